package middleware

import (
	"github.com/biosecret/taskflow/dashboard"
	"github.com/gofiber/fiber/v2"
)

// RequireSession chặn request khi chưa có người dùng đăng nhập
func RequireSession(d *dashboard.Dashboard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, ok := d.User()
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "not logged in"})
		}

		// Lưu username vào context cho các handler phía sau
		c.Locals("username", name)
		return c.Next()
	}
}
