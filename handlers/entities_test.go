package handlers_test

import (
	"encoding/base64"
	"fmt"
	"lifehub/models"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.signup(t, "alice")
	otherToken := ts.signup(t, "bob")

	resp, body := ts.do(t, http.MethodPost, "/api/tasks", token, map[string]any{
		"title":    "Water plants",
		"priority": "high",
		"dueDate":  "2026-03-01T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	task := decode[models.Task](t, body)
	path := fmt.Sprintf("/api/tasks/%d", task.ID)

	t.Run("Invalid priority", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/tasks", token, map[string]any{"title": "x", "priority": "urgent"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Other user cannot read", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, path, otherToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, body := ts.do(t, http.MethodGet, "/api/tasks", otherToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, "[]", string(body))
	})

	t.Run("Patch completes", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodPatch, path, token, map[string]any{"completed": true})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		updated := decode[models.Task](t, body)
		assert.True(t, updated.Completed)
		assert.Equal(t, "Water plants", updated.Title)
		assert.Equal(t, "high", updated.Priority)
	})

	t.Run("Delete", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodDelete, path, token, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = ts.do(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPlannerEntities(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.signup(t, "alice")

	tests := []struct {
		name   string
		path   string
		create map[string]any
		patch  map[string]any
	}{
		{
			name:   "Events",
			path:   "/api/events",
			create: map[string]any{"title": "Dentist", "startDate": "2026-02-10T14:00:00Z"},
			patch:  map[string]any{"location": "Main St"},
		},
		{
			name:   "Transactions",
			path:   "/api/transactions",
			create: map[string]any{"amount": 1250, "description": "Groceries", "date": "2026-02-01T00:00:00Z"},
			patch:  map[string]any{"category": "food"},
		},
		{
			name:   "Contacts",
			path:   "/api/contacts",
			create: map[string]any{"name": "Sam", "email": "sam@example.com"},
			patch:  map[string]any{"phone": "555-0100"},
		},
		{
			name:   "Journal",
			path:   "/api/journal",
			create: map[string]any{"content": "A quiet day", "mood": "calm"},
			patch:  map[string]any{"mood": "happy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := ts.do(t, http.MethodPost, tt.path, token, tt.create)
			require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
			id := decode[map[string]any](t, body)["id"]

			itemPath := fmt.Sprintf("%s/%v", tt.path, id)

			resp, body = ts.do(t, http.MethodPatch, itemPath, token, tt.patch)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
			updated := decode[map[string]any](t, body)
			for k, v := range tt.patch {
				assert.Equal(t, v, updated[k])
			}

			resp, body = ts.do(t, http.MethodGet, tt.path, token, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Len(t, decode[[]map[string]any](t, body), 1)

			resp, body = ts.do(t, http.MethodGet, itemPath, token, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, id, decode[map[string]any](t, body)["id"])

			resp, _ = ts.do(t, http.MethodDelete, itemPath, token, nil)
			assert.Equal(t, http.StatusNoContent, resp.StatusCode)

			resp, _ = ts.do(t, http.MethodPatch, itemPath, token, tt.patch)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestHabitCompletion(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.signup(t, "alice")

	resp, body := ts.do(t, http.MethodPost, "/api/habits", token, map[string]any{
		"name":      "Stretch",
		"frequency": []string{"mon", "wed", "fri"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	habit := decode[models.Habit](t, body)

	t.Run("Invalid weekday", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/habits", token, map[string]any{
			"name":      "Run",
			"frequency": []string{"monday"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	resp, body = ts.do(t, http.MethodPost, fmt.Sprintf("/api/habits/%d/complete", habit.ID), token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	completion := decode[models.HabitCompletion](t, body)
	assert.Equal(t, habit.ID, completion.HabitID)

	resp, body = ts.do(t, http.MethodGet, "/api/habits", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	habits := decode[[]models.HabitWithCompletions](t, body)
	require.Len(t, habits, 1)
	assert.Equal(t, 1, habits[0].Streak)
	assert.Len(t, habits[0].Completions, 1)

	path := fmt.Sprintf("/api/habits/%d/completions/%d", habit.ID, completion.ID)
	resp, _ = ts.do(t, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDocuments(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.signup(t, "alice")
	otherToken := ts.signup(t, "bob")

	content := []byte("quarterly numbers")
	resp, body := ts.do(t, http.MethodPost, "/api/documents", token, map[string]any{
		"name":        "report.txt",
		"fileContent": base64.StdEncoding.EncodeToString(content),
		"type":        "text/plain",
		"tags":        []string{"work"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	doc := decode[models.Document](t, body)
	assert.Equal(t, int64(len(content)), doc.Size)
	assert.Equal(t, models.StringList{"work"}, doc.Tags)

	contentPath := fmt.Sprintf("/api/documents/%d/content", doc.ID)

	t.Run("Invalid base64", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/documents", token, map[string]any{
			"name":        "bad.txt",
			"fileContent": "%%%",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Content streams back", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodGet, contentPath, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
		assert.Equal(t, content, body)
	})

	t.Run("Other user cannot read content", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, contentPath, otherToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Delete", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodDelete, fmt.Sprintf("/api/documents/%d", doc.ID), token, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = ts.do(t, http.MethodGet, contentPath, token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCommunityTips(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.signup(t, "alice")
	otherToken := ts.signup(t, "bob")

	resp, body := ts.do(t, http.MethodPost, "/api/community-tips", token, map[string]any{
		"title":    "Batch errands",
		"content":  "Do them all on one trip.",
		"category": "productivity",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	tip := decode[models.CommunityTip](t, body)
	path := fmt.Sprintf("/api/community-tips/%d", tip.ID)

	t.Run("Listing is public", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodGet, "/api/community-tips", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decode[[]models.CommunityTip](t, body), 1)
	})

	t.Run("Creating requires a session", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/community-tips", "", map[string]any{"title": "x", "content": "y", "category": "z"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Anyone can vote", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodPost, path+"/vote", otherToken, map[string]any{"vote": true})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		assert.Equal(t, 1, decode[models.CommunityTip](t, body).Votes)
	})

	t.Run("Vote requires a direction", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, path+"/vote", otherToken, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Only the author edits", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPatch, path, otherToken, map[string]any{"title": "Mine now"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, _ = ts.do(t, http.MethodDelete, path, token, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Vote on missing tip", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, path+"/vote", otherToken, map[string]any{"vote": false})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
