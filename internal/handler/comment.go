package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openpress/openpress/internal/domain"
	"github.com/openpress/openpress/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// HandleList returns a post's comments, newest first.
// GET /api/posts/{id}/comments
// Response: {"comments":[...]}
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, err := postID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	comments, err := h.comments.ListByPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeServerError(w, "list comments", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"comments": toCommentDTOs(comments),
	})
}

// HandleCreate attaches a comment to a post.
// POST /api/posts/{id}/comments
// Request: {"content":"..."}
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	postID, err := postID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.comments.Create(r.Context(), user.ID, postID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeServerError(w, "create comment", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toCommentDTO(comment))
}

// HandleDelete removes a comment owned by the requester.
// DELETE /api/comments/{id}
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Comment not found")
		return
	}

	if err := h.comments.Delete(r.Context(), user.ID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Comment not found")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "Not authorized to delete this comment")
		default:
			writeServerError(w, "delete comment", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Comment deleted successfully",
	})
}
