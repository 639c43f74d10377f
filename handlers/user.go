package handlers

import (
	"lifehub/app"
	"lifehub/middleware"
	"lifehub/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated user's profile
func GetProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.UserService.Profile(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return success(c, user)
	}
}

// UpdatePreferences replaces the user's preferences object
func UpdatePreferences(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdatePreferencesRequest
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		user, err := a.UserService.UpdatePreferences(c.UserContext(), middleware.GetUserID(c), req.Preferences)
		if err != nil {
			return respondError(c, err)
		}
		return success(c, user)
	}
}
