package database

import (
	"context"
	"lifehub/models"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	return NewRepository(db)
}

// createTestUser inserts a user with no widgets.
func createTestUser(t *testing.T, repo *Repository, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "hash"}
	require.NoError(t, repo.CreateUserWithWidgets(context.Background(), user, nil))
	return user
}

func widgetIDs(widgets []models.Widget) []int64 {
	ids := make([]int64, len(widgets))
	for i, w := range widgets {
		ids[i] = w.ID
	}
	return ids
}
