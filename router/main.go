package router

import (
	"github.com/biosecret/taskflow/dashboard"
	"github.com/biosecret/taskflow/handlers"
	"github.com/biosecret/taskflow/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler, d *dashboard.Dashboard) {
	app.Get("/health", h.HandleHealthCheck)

	api := app.Group("/api")

	api.Post("/session", h.HandleLogin)
	api.Get("/session", h.HandleGetSession)
	api.Delete("/session", h.HandleLogout)

	api.Get("/preferences", h.HandleGetPreferences)
	api.Put("/preferences", h.HandleUpdatePreferences)

	tasks := api.Group("/tasks", middleware.RequireSession(d))

	tasks.Get("/", h.HandleListTasks)
	tasks.Post("/", h.HandleCreateTask)
	tasks.Get("/:id", h.HandleGetOneTask)
	tasks.Put("/:id", h.HandleUpdateTask)
	tasks.Patch("/:id/toggle", h.HandleToggleTask)
	tasks.Delete("/:id", h.HandleDeleteTask)

	api.Get("/events", middleware.RequireSession(d), h.HandleEvents)
}
