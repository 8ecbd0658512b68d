package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "github.com/biosecret/taskflow/docs"
)

// AddSwaggerRoutes phục vụ tài liệu API tại /swagger
func AddSwaggerRoutes(app *fiber.App) {
	app.Get("/swagger/*", swagger.New(swagger.Config{
		Title:        "TaskFlow API",
		DeepLinking:  true,
		DocExpansion: "list",
	}))
}
