package middleware

import (
	"context"
	"errors"
	"io"
	"lifehub/models"
	"lifehub/services"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	sessions map[string]*models.Session
	err      error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, sessionID string) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	sess, ok := f.sessions[sessionID]
	if !ok {
		return nil, services.ErrSessionNotFound
	}
	return sess, nil
}

// recordingAuthenticator keeps every id it is asked about
type recordingAuthenticator struct {
	seen []string
}

func (r *recordingAuthenticator) Authenticate(_ context.Context, sessionID string) (*models.Session, error) {
	r.seen = append(r.seen, sessionID)
	return &models.Session{ID: sessionID, UserID: int64(len(r.seen))}, nil
}

func newAuthTestApp(auth Authenticator) *fiber.App {
	app := fiber.New()
	app.Use(StructuredLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	app.Get("/private", AuthRequired(auth), func(c *fiber.Ctx) error {
		if GetSession(c) == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"userId": GetUserID(c)})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	auth := &fakeAuthenticator{sessions: map[string]*models.Session{
		"good": {ID: "good", UserID: 42},
	}}
	app := newAuthTestApp(auth)

	tests := []struct {
		name           string
		cookie         string
		header         string
		expectedStatus int
	}{
		{name: "Bearer token", header: "Bearer good", expectedStatus: http.StatusOK},
		{name: "Session cookie", cookie: "good", expectedStatus: http.StatusOK},
		{name: "Nothing", expectedStatus: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic good", expectedStatus: http.StatusUnauthorized},
		{name: "Empty bearer", header: "Bearer ", expectedStatus: http.StatusUnauthorized},
		{name: "Unknown token", header: "Bearer bad", expectedStatus: http.StatusUnauthorized},
		{name: "Unknown cookie", cookie: "bad", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"userId":42}`, string(body))
			} else {
				assert.Contains(t, string(body), `"unauthorized"`)
			}
		})
	}
}

func TestAuthRequired_StoreFailure(t *testing.T) {
	app := newAuthTestApp(&fakeAuthenticator{err: errors.New("database is locked")})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer good")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestStructuredLogger_RequestID(t *testing.T) {
	app := fiber.New()
	app.Use(StructuredLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("requestID").(string))
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.NotEmpty(t, body)
		assert.Equal(t, string(body), resp.Header.Get("X-Request-ID"))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-id")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get("X-Request-ID"))
	})
}

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		name string
		hsts bool
	}{
		{name: "Development", hsts: false},
		{name: "Production", hsts: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(Security(tt.hsts))
			app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)

			assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
			assert.Equal(t, tt.hsts, resp.Header.Get("Strict-Transport-Security") != "")
		})
	}
}

func TestAuthRequired_RetainedIDsStayIntact(t *testing.T) {
	auth := &recordingAuthenticator{}
	app := newAuthTestApp(auth)

	var sent []string
	for i := 0; i < 20; i++ {
		token := "token-" + strconv.Itoa(1000+i)
		sent = append(sent, token)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if i%2 == 0 {
			req.Header.Set("Authorization", "Bearer "+token)
		} else {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		}

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, sent, auth.seen)
}
