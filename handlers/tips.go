package handlers

import (
	"lifehub/app"
	"lifehub/models"

	"github.com/gofiber/fiber/v2"
)

// ListTips returns every community tip, highest voted first
func ListTips(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tips, err := a.TipService.List(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return success(c, tips)
	}
}

func CreateTip(a *app.App) fiber.Handler {
	return createOwned(a, a.TipService.Create)
}

func UpdateTip(a *app.App) fiber.Handler {
	return updateOwned(a, a.TipService.Update)
}

func DeleteTip(a *app.App) fiber.Handler {
	return deleteOwned(a.TipService.Delete)
}

// VoteTip moves a tip's vote count up or down by one
func VoteTip(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}

		var req models.VoteTipRequest
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		tip, err := a.TipService.Vote(c.UserContext(), id, *req.Vote)
		if err != nil {
			return respondError(c, err)
		}
		return success(c, tip)
	}
}
