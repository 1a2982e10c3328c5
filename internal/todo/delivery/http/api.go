package http

import (
	"github.com/gin-gonic/gin"

	"todo-manager/pkg/response"
)

// APIBoard godoc
// @Summary     Get the todo board
// @Description Returns all tasks in display order with their filter visibility.
// @Tags        Todo
// @Produce     json
// @Success     200 {object} boardResp
// @Router      /api/v1/todos [GET]
func (h *handler) APIBoard(c *gin.Context) {
	response.OK(c, h.newBoardResp(h.uc.Board(c.Request.Context())))
}

// APICreate godoc
// @Summary     Add a task
// @Description Appends a task to the end of the list.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body taskReq true "Task data"
// @Success     200 {object} taskDataResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos [POST]
func (h *handler) APICreate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskReq(c)
	if err != nil {
		response.ValidationError(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskDataResp{Task: newTaskResp(output.Task)})
}

// APIUpdate godoc
// @Summary     Save a task
// @Description Replaces the fields of a task, keeping its position.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Task ID"
// @Param       body body taskReq true "Task data"
// @Success     200 {object} taskDataResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) APIUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	req, err := h.processTaskReq(c)
	if err != nil {
		response.ValidationError(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toUpdateInput(id))
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskDataResp{Task: newTaskResp(output.Task)})
}

// APIDelete godoc
// @Summary     Delete a task
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) APIDelete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// APIDeleteAll godoc
// @Summary     Delete every task
// @Tags        Todo
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/todos [DELETE]
func (h *handler) APIDeleteAll(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteAll(ctx); err != nil {
		h.l.Errorf(ctx, "uc.DeleteAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// APIFilter godoc
// @Summary     Set the filter text
// @Description Stores the lowercased filter and returns the filtered board.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body filterReq true "Filter"
// @Success     200 {object} boardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/filter [PUT]
func (h *handler) APIFilter(c *gin.Context) {
	ctx := c.Request.Context()

	var req filterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err, nil)
		return
	}

	if err := h.uc.SetFilter(ctx, req.Filter); err != nil {
		h.l.Errorf(ctx, "uc.SetFilter: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBoardResp(h.uc.Board(ctx)))
}
