package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openpress/openpress/internal/domain"
	"github.com/openpress/openpress/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleList returns a page of posts with the pagination envelope.
// GET /api/posts?search=&sort=&order=&page=&limit=
// Response: {"posts":[...],"total":N,"totalPages":N,"currentPage":N}
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	// Non-numeric page and limit fall back to the service defaults.
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	query := domain.ListQuery{
		Search:    params.Get("search"),
		SortField: params.Get("sort"),
		SortOrder: domain.SortOrder(params.Get("order")),
		Page:      page,
		PageSize:  limit,
	}

	result, err := h.posts.List(r.Context(), query)
	if err != nil {
		writeServerError(w, "list posts", err)
		return
	}

	writeJSON(w, http.StatusOK, toPostPageDTO(result))
}

// HandleGet returns a single post with its author resolved.
// GET /api/posts/{id}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeServerError(w, "get post", err)
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleMyPosts returns the requester's own posts, newest first,
// unpaginated.
// GET /api/posts/my-posts
// Response: {"posts":[...]}
func (h *PostHandler) HandleMyPosts(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	posts, err := h.posts.ListByAuthor(r.Context(), user.ID)
	if err != nil {
		writeServerError(w, "list my posts", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"posts": toPostDTOs(posts),
	})
}

// HandleCreate publishes a new post authored by the requester.
// POST /api/posts
// Request: {"title":"...","content":"...","tags":["..."]}
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.posts.Create(r.Context(), user.ID, req.Title, req.Content, req.Tags)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeServerError(w, "create post", err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostDTO(post))
}

// HandleUpdate applies a partial update to a post owned by the requester.
// Title and content keep their stored values when empty; a present tags
// field replaces the stored list, including an explicit empty list.
// PUT /api/posts/{id}
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := postID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	var req struct {
		Title   string    `json:"title"`
		Content string    `json:"content"`
		Tags    *[]string `json:"tags"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.posts.Update(r.Context(), user.ID, id, service.PostUpdate{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "Not authorized to update this post")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeServerError(w, "update post", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleDelete removes a post owned by the requester.
// DELETE /api/posts/{id}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := postID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	if err := h.posts.Delete(r.Context(), user.ID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "Not authorized to delete this post")
		default:
			writeServerError(w, "delete post", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}

func postID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
