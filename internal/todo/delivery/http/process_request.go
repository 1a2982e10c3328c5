package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processTaskForm binds the urlencoded task form.
func (h *handler) processTaskForm(c *gin.Context) (taskForm, error) {
	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		return form, err
	}
	return form, nil
}

// processTaskReq binds and validates a JSON task body.
func (h *handler) processTaskReq(c *gin.Context) (taskReq, error) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processID reads the :id path param.
func (h *handler) processID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
