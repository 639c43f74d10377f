package handlers

import (
	"lifehub/app"
	"lifehub/middleware"
	"lifehub/models"
	"lifehub/services"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Register creates a password account
func Register(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		user, err := a.AuthService.Register(c.UserContext(), req)
		if err != nil {
			return respondError(c, err)
		}

		slog.Info("user registered", "user_id", user.ID, "username", user.Username)
		return created(c, user)
	}
}

// Login handles username/password authentication
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		resp, err := a.AuthService.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			return respondError(c, err)
		}

		return startSession(c, a, resp)
	}
}

// GoogleLogin handles authentication with a Google ID token
func GoogleLogin(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.GoogleLoginRequest
		if err := parseBody(c, a, &req); err != nil {
			return respondError(c, err)
		}

		resp, err := a.AuthService.LoginWithGoogle(c.UserContext(), req.IDToken)
		if err != nil {
			return respondError(c, err)
		}

		return startSession(c, a, resp)
	}
}

// Logout handles user logout
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(middleware.SessionCookie)
		if sessionID == "" {
			sessionID = strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		}

		if sessionID != "" {
			if err := a.AuthService.Logout(c.UserContext(), sessionID); err != nil {
				return respondError(c, err)
			}
		}

		c.ClearCookie(middleware.SessionCookie)
		return noContent(c)
	}
}

// Me returns the authenticated user
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.AuthService.Me(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return success(c, user)
	}
}

func startSession(c *fiber.Ctx, a *app.App, resp *services.LoginResponse) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    resp.Session.ID,
		Expires:  resp.Session.ExpiresAt,
		HTTPOnly: true,
		Secure:   a.SecureCookie,
		SameSite: "Lax",
		Path:     "/",
	})

	slog.Info("login successful", "user_id", resp.User.ID)

	return success(c, fiber.Map{
		"user":      resp.User,
		"token":     resp.Session.ID,
		"expiresAt": resp.Session.ExpiresAt,
	})
}
