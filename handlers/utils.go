package handlers

import (
	"errors"
	"fmt"
	"lifehub/app"
	"lifehub/services"
	"lifehub/validator"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var errMalformedBody = errors.New("malformed request body")

func success(c *fiber.Ctx, data any) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func noContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message, "code": code})
}

func badRequest(c *fiber.Ctx, message string) error {
	return errorJSON(c, fiber.StatusBadRequest, "validation_error", message)
}

// parseBody decodes the JSON body into req and validates it
func parseBody(c *fiber.Ctx, a *app.App, req any) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return a.Validator.Validate(req)
}

// parseID reads a positive integer route parameter
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", errMalformedBody, name)
	}
	return id, nil
}

// respondError maps service and validation errors onto status codes
func respondError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"code":    "validation_error",
			"details": verrs,
		})
	case errors.Is(err, errMalformedBody), errors.Is(err, services.ErrInvalidContent):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidReference):
		return errorJSON(c, fiber.StatusBadRequest, "invalid_reference", "Widget ids must match the current layout exactly")
	case errors.Is(err, services.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, "not_found", "Resource not found")
	case errors.Is(err, services.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, "forbidden", "Access denied")
	case errors.Is(err, services.ErrUsernameTaken):
		return errorJSON(c, fiber.StatusConflict, "conflict", "Username already taken")
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrInvalidUserInfo),
		errors.Is(err, services.ErrSessionNotFound):
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Invalid credentials")
	case errors.Is(err, services.ErrGoogleLoginDisabled):
		return errorJSON(c, fiber.StatusNotFound, "not_found", "Google login is not enabled")
	default:
		return serverErrorWithDetails(c, "Internal server error", err)
	}
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":      message,
		"code":       "internal_error",
		"request_id": requestID,
	})
}
