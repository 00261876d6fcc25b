package http

import (
	"github.com/labstack/echo/v4"
)

func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api/tasks")

	g.GET("", h.ListTasks)
	g.POST("", h.CreateTask)
	g.DELETE("", h.DeleteAllTasks)
	g.GET("/count", h.TaskCount)
	g.GET("/:id", h.GetTask)
	g.PUT("/:id", h.UpdateTask)
	g.DELETE("/:id", h.DeleteTask)
}
