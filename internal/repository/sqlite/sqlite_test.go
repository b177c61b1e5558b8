package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/openpress/openpress/internal/domain"
	"github.com/openpress/openpress/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedUser(t *testing.T, db *sqlite.DB, username string) int64 {
	t.Helper()
	u := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	if err := db.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u.ID
}

func seedPost(t *testing.T, db *sqlite.DB, authorID int64, title, content string, tags []string) int64 {
	t.Helper()
	p := &domain.Post{
		Title:    title,
		Content:  content,
		Tags:     tags,
		AuthorID: authorID,
	}
	if err := db.Posts().Create(context.Background(), p); err != nil {
		t.Fatalf("seed post %s: %v", title, err)
	}
	return p.ID
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// A second run must be a no-op, not an error.
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestWipeContent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	userID := seedUser(t, db, "wiper")
	seedPost(t, db, userID, "Doomed", "body", []string{"a"})

	if err := db.WipeContent(ctx); err != nil {
		t.Fatalf("WipeContent: %v", err)
	}

	posts, total, err := db.Posts().List(ctx, domain.ListQuery{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 0 || len(posts) != 0 {
		t.Fatalf("expected no posts after wipe, got %d (total %d)", len(posts), total)
	}

	// Users survive a content wipe.
	if _, err := db.Users().GetByID(ctx, userID); err != nil {
		t.Fatalf("user should survive wipe: %v", err)
	}
}
