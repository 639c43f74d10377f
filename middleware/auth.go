package middleware

import (
	"context"
	"errors"
	"lifehub/models"
	"lifehub/services"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// SessionCookie is the cookie carrying the session id for browser clients
const SessionCookie = "session_id"

// Authenticator resolves a session id to a live session
type Authenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*models.Session, error)
}

// AuthRequired creates an authentication middleware that requires a valid session cookie or Bearer token
func AuthRequired(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookie)
		fromCookie := sessionID != ""

		if !fromCookie {
			authHeader := c.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c, "Missing authorization")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return unauthorized(c, "Invalid authorization header format")
			}
			sessionID = parts[1]
		}

		sess, err := auth.Authenticate(c.UserContext(), utils.CopyString(sessionID))
		if errors.Is(err, services.ErrSessionNotFound) {
			if fromCookie {
				c.ClearCookie(SessionCookie)
			}
			return unauthorized(c, "Invalid or expired session")
		}
		if err != nil {
			return err
		}

		c.Locals("userID", sess.UserID)
		c.Locals("session", sess)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "unauthorized",
	})
}

func GetUserID(c *fiber.Ctx) int64 {
	userID, ok := c.Locals("userID").(int64)
	if !ok {
		return 0
	}
	return userID
}

// GetSession returns the session resolved by AuthRequired, or nil
func GetSession(c *fiber.Ctx) *models.Session {
	sess, _ := c.Locals("session").(*models.Session)
	return sess
}
