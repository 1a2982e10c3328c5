package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"todo-manager/internal/todo"
	"todo-manager/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	// HTML page
	Page(c *gin.Context)
	Create(c *gin.Context)
	Save(c *gin.Context)
	Remove(c *gin.Context)
	Clear(c *gin.Context)
	Filter(c *gin.Context)

	// JSON API
	APIBoard(c *gin.Context)
	APICreate(c *gin.Context)
	APIUpdate(c *gin.Context)
	APIDelete(c *gin.Context)
	APIDeleteAll(c *gin.Context)
	APIFilter(c *gin.Context)
}

type handler struct {
	l    log.Logger
	uc   todo.UseCase
	tmpl *template.Template
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the todo domain. It fails when the page
// templates cannot be parsed.
func New(l log.Logger, uc todo.UseCase) (*handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &handler{
		l:    l,
		uc:   uc,
		tmpl: tmpl,
	}, nil
}
