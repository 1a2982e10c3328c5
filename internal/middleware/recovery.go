package middleware

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"todo-manager/pkg/response"
)

// Recovery logs a panic with its message, location and stack, then answers 500.
// Nothing else is attempted.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: %s %s: %s\n%s",
			c.Request.Method, c.Request.URL.Path, fmt.Sprint(recovered), debug.Stack())
		response.InternalError(c, fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
