package handlers

import (
	"context"
	"lifehub/app"
	"lifehub/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handler builders for the owned-entity endpoints. Each takes the bound service method,
// so the user id from the session is the only owner ever passed down.

func listOwned[T any](list func(ctx context.Context, userID int64) ([]T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := list(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return success(c, items)
	}
}

func getOwned[T any](get func(ctx context.Context, userID, id int64) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}

		item, err := get(c.UserContext(), middleware.GetUserID(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return success(c, item)
	}
}

func createOwned[T, R any](a *app.App, create func(ctx context.Context, userID int64, req R) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		item, err := create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return respondError(c, err)
		}
		return created(c, item)
	}
}

func updateOwned[T, R any](a *app.App, update func(ctx context.Context, userID, id int64, req R) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}

		var req R
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		item, err := update(c.UserContext(), middleware.GetUserID(c), id, req)
		if err != nil {
			return respondError(c, err)
		}
		return success(c, item)
	}
}

func deleteOwned(del func(ctx context.Context, userID, id int64) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}

		if err := del(c.UserContext(), middleware.GetUserID(c), id); err != nil {
			return respondError(c, err)
		}
		return noContent(c)
	}
}
