package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Username string `json:"username"`
}

type preferencesRequest struct {
	DarkMode *bool `json:"darkMode"`
}

// HandleLogin godoc
// @Summary Log in with a username (no password)
// @Tags session
// @Accept json
// @Produce json
// @Param body body loginRequest true "username"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/session [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.dash.Login(req.Username); err != nil {
		return fail(c, err)
	}
	name, _ := h.dash.User()
	return c.Status(200).JSON(fiber.Map{"username": name, "darkMode": h.dash.DarkMode()})
}

// HandleGetSession godoc
// @Summary Current session user
// @Tags session
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/session [get]
func (h *Handler) HandleGetSession(c *fiber.Ctx) error {
	name, ok := h.dash.User()
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "not logged in"})
	}
	return c.Status(200).JSON(fiber.Map{"username": name})
}

// HandleLogout godoc
// @Summary Log out; tasks are kept
// @Tags session
// @Success 204
// @Router /api/session [delete]
func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	if err := h.dash.Logout(); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetPreferences godoc
// @Summary Theme preference
// @Tags preferences
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /api/preferences [get]
func (h *Handler) HandleGetPreferences(c *fiber.Ctx) error {
	return c.Status(200).JSON(fiber.Map{"darkMode": h.dash.DarkMode()})
}

// HandleUpdatePreferences godoc
// @Summary Set the theme preference
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body preferencesRequest true "darkMode"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/preferences [put]
func (h *Handler) HandleUpdatePreferences(c *fiber.Ctx) error {
	var req preferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if req.DarkMode == nil {
		return c.Status(400).JSON(fiber.Map{"error": "darkMode is required"})
	}
	if err := h.dash.SetDarkMode(*req.DarkMode); err != nil {
		return fail(c, err)
	}
	return c.Status(200).JSON(fiber.Map{"darkMode": *req.DarkMode})
}
