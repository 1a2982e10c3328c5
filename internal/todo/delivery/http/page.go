package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-manager/internal/todo"
)

// Page renders the whole list: add form, filter, items and notifications.
func (h *handler) Page(c *gin.Context) {
	h.renderPage(c, http.StatusOK, taskForm{}, "")
}

// Create handles the add form. Invalid input re-renders the page with the
// submitted values and the reason.
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := h.processTaskForm(c)
	if err != nil {
		h.renderPage(c, http.StatusBadRequest, form, err.Error())
		return
	}

	if _, err := h.uc.Create(ctx, form.toCreateInput()); err != nil {
		h.pageError(c, form, err)
		return
	}

	h.redirectHome(c)
}

// Save handles the per-item save control.
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		h.renderPage(c, http.StatusBadRequest, taskForm{}, err.Error())
		return
	}
	form, err := h.processTaskForm(c)
	if err != nil {
		h.renderPage(c, http.StatusBadRequest, taskForm{}, err.Error())
		return
	}

	if _, err := h.uc.Update(ctx, form.toUpdateInput(id)); err != nil {
		h.pageError(c, taskForm{}, err)
		return
	}

	h.redirectHome(c)
}

// Remove handles the per-item delete control.
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		h.renderPage(c, http.StatusBadRequest, taskForm{}, err.Error())
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.pageError(c, taskForm{}, err)
		return
	}

	h.redirectHome(c)
}

// Clear handles the "clear all" control.
func (h *handler) Clear(c *gin.Context) {
	if err := h.uc.DeleteAll(c.Request.Context()); err != nil {
		h.pageError(c, taskForm{}, err)
		return
	}
	h.redirectHome(c)
}

// Filter stores the filter text from the filter input.
func (h *handler) Filter(c *gin.Context) {
	if err := h.uc.SetFilter(c.Request.Context(), c.PostForm("filter")); err != nil {
		h.pageError(c, taskForm{}, err)
		return
	}
	h.redirectHome(c)
}

// pageError decides how a failed page action is answered. A stale item (already
// removed elsewhere) is a no-op: the page is simply shown again.
func (h *handler) pageError(c *gin.Context, form taskForm, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, todo.ErrTaskNotFound):
		h.redirectHome(c)
	case isValidationError(err):
		h.renderPage(c, http.StatusBadRequest, form, err.Error())
	default:
		h.l.Errorf(ctx, "todo.delivery.http.pageError: %v", err)
		h.renderPage(c, http.StatusInternalServerError, form, "Something went wrong")
	}
}

func (h *handler) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// renderPage executes the page into a buffer so a template failure answers 500
// instead of a truncated 200.
func (h *handler) renderPage(c *gin.Context, status int, form taskForm, errMsg string) {
	ctx := c.Request.Context()

	var buf bytes.Buffer
	err := h.tmpl.ExecuteTemplate(&buf, pageTemplate, pageData{
		Board: h.uc.Board(ctx),
		Form:  form,
		Error: errMsg,
	})
	if err != nil {
		h.l.Errorf(ctx, "todo.delivery.http.renderPage: %v", err)
		c.Data(http.StatusInternalServerError, textContentType, []byte(errRenderPage))
		return
	}

	c.Data(status, htmlContentType, buf.Bytes())
}
