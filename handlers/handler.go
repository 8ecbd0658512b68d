package handlers

import (
	"errors"

	"github.com/biosecret/taskflow/dashboard"
	"github.com/biosecret/taskflow/database"
	"github.com/biosecret/taskflow/events"
	"github.com/gofiber/fiber/v2"
)

// Handler gom các dependency mà các route cần
type Handler struct {
	dash    *dashboard.Dashboard
	broker  *events.Broker
	storage database.Storage
}

func New(dash *dashboard.Dashboard, broker *events.Broker, storage database.Storage) *Handler {
	return &Handler{dash: dash, broker: broker, storage: storage}
}

// errorStatus maps dashboard errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrNoSession):
		return fiber.StatusUnauthorized
	case errors.Is(err, dashboard.ErrTaskNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, dashboard.ErrEmptyUsername),
		errors.Is(err, dashboard.ErrEmptyTitle),
		errors.Is(err, dashboard.ErrInvalidPriority),
		errors.Is(err, dashboard.ErrInvalidDueDate):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
}

// HandleHealthCheck godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	if p, ok := h.storage.(database.Pinger); ok {
		if err := p.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "degraded",
				"storage": err.Error(),
			})
		}
	}
	return c.Status(200).JSON(fiber.Map{"status": "ok", "storage": "ok"})
}
