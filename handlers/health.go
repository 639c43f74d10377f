package handlers

import (
	"lifehub/app"

	"github.com/gofiber/fiber/v2"
)

// Health reports whether the database is reachable
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Repo.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
