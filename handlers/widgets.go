package handlers

import (
	"lifehub/app"
	"lifehub/middleware"
	"lifehub/models"

	"github.com/gofiber/fiber/v2"
)

// ListWidgets returns the user's widgets in layout order
func ListWidgets(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		widgets, err := a.WidgetService.List(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return success(c, widgets)
	}
}

// CreateWidget appends a widget to the end of the layout
func CreateWidget(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateWidgetRequest
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		widget, err := a.WidgetService.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return respondError(c, err)
		}
		return created(c, widget)
	}
}

// UpdateWidget patches a widget's type or config. Position only changes through ReorderWidgets.
func UpdateWidget(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}

		var req models.UpdateWidgetRequest
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		widget, err := a.WidgetService.Update(c.UserContext(), middleware.GetUserID(c), id, req)
		if err != nil {
			return respondError(c, err)
		}
		return success(c, widget)
	}
}

// DeleteWidget removes a widget, leaving the other positions untouched
func DeleteWidget(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}

		existed, err := a.WidgetService.Delete(c.UserContext(), middleware.GetUserID(c), id)
		if err != nil {
			return respondError(c, err)
		}
		if !existed {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Widget not found")
		}
		return noContent(c)
	}
}

// ReorderWidgets assigns positions from the order of widgetIds and returns the new layout
func ReorderWidgets(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ReorderWidgetsRequest
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		widgets, err := a.WidgetService.Reorder(c.UserContext(), middleware.GetUserID(c), req.WidgetIDs)
		if err != nil {
			return respondError(c, err)
		}
		return success(c, widgets)
	}
}
