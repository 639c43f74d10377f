package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"lifehub/app"
	"lifehub/config"
	"lifehub/config/setup"
	"lifehub/database"
	"lifehub/session"
	"lifehub/storage"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	app    *app.App
	server *fiber.App
}

// setupTestServer wires the full route table against a temporary database
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpDir := t.TempDir()

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err, "Failed to initialize test database")
	require.NoError(t, db.Migrate(), "Failed to run migrations")
	t.Cleanup(func() { db.Close() })

	blobs, err := storage.NewLocal(filepath.Join(tmpDir, "uploads"))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := database.NewRepository(db)
	sessionStore := session.NewStore(db.DB, time.Hour)
	application := app.New(repo, sessionStore, blobs, logger, app.Options{})

	server := setup.NewFiberApp(logger, false)
	setup.ApplyMiddleware(server, &config.Config{CORSOrigins: "*"}, logger)
	setup.RegisterRoutes(server, application)

	return &testServer{app: application, server: server}
}

// do sends a JSON request and returns the response with its body read
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.server.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return resp, data
}

// signup registers an account and returns a bearer token for it
func (ts *testServer) signup(t *testing.T, username string) string {
	t.Helper()

	creds := map[string]any{"username": username, "password": "correct-horse"}

	resp, body := ts.do(t, http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = ts.do(t, http.MethodPost, "/api/auth/login", "", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details []struct {
		Field string `json:"field"`
		Tag   string `json:"tag"`
	} `json:"details"`
}
