package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/openpress/openpress/internal/domain"
	"github.com/openpress/openpress/internal/repository/sqlite"
	"github.com/openpress/openpress/internal/service"
)

func newTestCommentService(t *testing.T) (*service.CommentService, *service.PostService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewCommentService(db.Comments(), db.Posts()),
		service.NewPostService(db.Posts()), db
}

func TestCommentService_CreateAndList(t *testing.T) {
	comments, posts, db := newTestCommentService(t)
	ctx := context.Background()

	authorID := seedUserForTest(t, db, "talker")
	post, err := posts.Create(ctx, authorID, "Topic", "body", nil)
	if err != nil {
		t.Fatalf("Create post: %v", err)
	}

	created, err := comments.Create(ctx, authorID, post.ID, "well said")
	if err != nil {
		t.Fatalf("Create comment: %v", err)
	}
	if created.Author == nil || created.Author.Username != "talker" {
		t.Fatalf("expected populated author, got %+v", created.Author)
	}

	list, err := comments.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(list) != 1 || list[0].Content != "well said" {
		t.Fatalf("unexpected comments: %+v", list)
	}
}

func TestCommentService_Create_MissingPost(t *testing.T) {
	comments, _, db := newTestCommentService(t)

	authorID := seedUserForTest(t, db, "shouter")
	_, err := comments.Create(context.Background(), authorID, 99999, "void")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentService_Create_EmptyContent(t *testing.T) {
	comments, posts, db := newTestCommentService(t)
	ctx := context.Background()

	authorID := seedUserForTest(t, db, "mute")
	post, err := posts.Create(ctx, authorID, "Topic", "body", nil)
	if err != nil {
		t.Fatalf("Create post: %v", err)
	}

	_, err = comments.Create(ctx, authorID, post.ID, "   ")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCommentService_ListByPost_MissingPost(t *testing.T) {
	comments, _, _ := newTestCommentService(t)

	_, err := comments.ListByPost(context.Background(), 4242)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentService_Delete_NonOwnerForbidden(t *testing.T) {
	comments, posts, db := newTestCommentService(t)
	ctx := context.Background()

	ownerID := seedUserForTest(t, db, "cowner")
	intruderID := seedUserForTest(t, db, "cintruder")
	post, err := posts.Create(ctx, ownerID, "Topic", "body", nil)
	if err != nil {
		t.Fatalf("Create post: %v", err)
	}
	created, err := comments.Create(ctx, ownerID, post.ID, "mine")
	if err != nil {
		t.Fatalf("Create comment: %v", err)
	}

	if err := comments.Delete(ctx, intruderID, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := comments.Delete(ctx, ownerID, created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
