package handlers

import (
	"lifehub/app"
	"lifehub/middleware"
	"lifehub/models"

	"github.com/gofiber/fiber/v2"
)

func ListHabits(a *app.App) fiber.Handler {
	return listOwned(a.HabitService.List)
}

func CreateHabit(a *app.App) fiber.Handler {
	return createOwned(a, a.HabitService.Create)
}

func UpdateHabit(a *app.App) fiber.Handler {
	return updateOwned(a, a.HabitService.Update)
}

func DeleteHabit(a *app.App) fiber.Handler {
	return deleteOwned(a.HabitService.Delete)
}

// CompleteHabit marks a habit done. The body is optional; without a date it counts for today.
func CompleteHabit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}

		var req models.CompleteHabitRequest
		if len(c.Body()) > 0 {
			if err := parseBody(c, a, &req); err != nil {
				return respondError(c, err)
			}
		}

		completion, err := a.HabitService.Complete(c.UserContext(), middleware.GetUserID(c), id, req.Date)
		if err != nil {
			return respondError(c, err)
		}
		return created(c, completion)
	}
}

// UncompleteHabit removes one completion of a habit
func UncompleteHabit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		completionID, err := parseID(c, "completionId")
		if err != nil {
			return respondError(c, err)
		}

		if err := a.HabitService.Uncomplete(c.UserContext(), middleware.GetUserID(c), id, completionID); err != nil {
			return respondError(c, err)
		}
		return noContent(c)
	}
}
