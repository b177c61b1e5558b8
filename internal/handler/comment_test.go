package handler_test

import (
	"fmt"
	"net/http"
	"testing"
)

type commentBody struct {
	ID      int64  `json:"id"`
	PostID  int64  `json:"postId"`
	Content string `json:"content"`
	Author  *struct {
		Username string `json:"username"`
	} `json:"author"`
}

func TestCommentHandlers_Thread(t *testing.T) {
	r, auth := newTestRouter(t)
	_, authorToken := registerUser(t, auth, "op")
	_, readerToken := registerUser(t, auth, "reader")

	w := doJSON(t, r, http.MethodPost, "/api/posts", authorToken, map[string]any{
		"title": "Discuss", "content": "body",
	})
	post := decode[postBody](t, w)
	commentsPath := fmt.Sprintf("/api/posts/%d/comments", post.ID)

	// Commenting requires auth.
	w = doJSON(t, r, http.MethodPost, commentsPath, "", map[string]string{"content": "anon"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, commentsPath, readerToken, map[string]string{"content": "nice post"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decode[commentBody](t, w)
	if created.Author == nil || created.Author.Username != "reader" {
		t.Fatalf("expected author 'reader', got %+v", created.Author)
	}

	// Listing is public.
	w = doJSON(t, r, http.MethodGet, commentsPath, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode[map[string][]commentBody](t, w)
	if len(body["comments"]) != 1 || body["comments"][0].Content != "nice post" {
		t.Fatalf("unexpected comments: %+v", body["comments"])
	}

	// Only the comment's author can delete it.
	deletePath := fmt.Sprintf("/api/comments/%d", created.ID)
	w = doJSON(t, r, http.MethodDelete, deletePath, authorToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for post author, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, deletePath, readerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for comment author, got %d", w.Code)
	}
}

func TestCommentHandlers_MissingPost(t *testing.T) {
	r, auth := newTestRouter(t)
	_, token := registerUser(t, auth, "voidseeker")

	w := doJSON(t, r, http.MethodGet, "/api/posts/9999/comments", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/posts/9999/comments", token, map[string]string{"content": "hello?"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
