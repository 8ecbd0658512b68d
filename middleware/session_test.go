package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/biosecret/taskflow/dashboard"
	"github.com/biosecret/taskflow/database"
	"github.com/biosecret/taskflow/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(d *dashboard.Dashboard) *fiber.App {
	app := fiber.New()
	app.Get("/me", RequireSession(d), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("username").(string))
	})
	return app
}

func TestRequireSession(t *testing.T) {
	d := dashboard.New(store.New(database.NewMemory()), nil)
	app := setupApp(d)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	require.NoError(t, d.Login("alice"))

	resp, err = app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "alice", string(body))
}
