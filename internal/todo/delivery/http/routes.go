package http

import (
	"todo-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes maps the HTML page and its form actions.
// Mutating routes go through the rate limiter.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/", h.Page)
	rg.POST("/filter", mw.RateLimit(), h.Filter)

	todos := rg.Group("/todos", mw.RateLimit())
	{
		todos.POST("", h.Create)
		todos.POST("/clear", h.Clear)
		todos.POST("/:id/save", h.Save)
		todos.POST("/:id/delete", h.Remove)
	}
}

// RegisterAPIRoutes maps the JSON API under rg (normally /api/v1).
func RegisterAPIRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.GET("", h.APIBoard)
		todos.POST("", mw.RateLimit(), h.APICreate)
		todos.DELETE("", mw.RateLimit(), h.APIDeleteAll)
		todos.PUT("/:id", mw.RateLimit(), h.APIUpdate)
		todos.DELETE("/:id", mw.RateLimit(), h.APIDelete)
	}
	rg.PUT("/filter", mw.RateLimit(), h.APIFilter)
}
