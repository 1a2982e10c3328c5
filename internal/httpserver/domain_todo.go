package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	todoHTTP "todo-manager/internal/todo/delivery/http"
)

// setupTodoDomain builds the todo HTTP handler and registers the page and API routes.
// A handler that cannot parse its templates aborts server construction.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, pages, api *gin.RouterGroup) error {
	h, err := todoHTTP.New(srv.l, srv.todoUC)
	if err != nil {
		return fmt.Errorf("todo handler: %w", err)
	}

	todoHTTP.RegisterPageRoutes(pages, h, srv.mw)
	todoHTTP.RegisterAPIRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Todo domain registered (mode: %s)", srv.todoUC.Mode())
	return nil
}
