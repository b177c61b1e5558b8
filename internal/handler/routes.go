package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/openpress/openpress/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given router.
func RegisterRoutes(r chi.Router, auth *service.AuthService, posts *service.PostService, comments *service.CommentService) {
	authHandler := NewAuthHandler(auth)
	postHandler := NewPostHandler(posts)
	commentHandler := NewCommentHandler(comments)

	requireAuth := RequireAuth(auth)

	r.Get("/healthz", HandleHealthz)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
		r.With(requireAuth).Get("/me", authHandler.HandleMe)
	})

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", postHandler.HandleList)
		r.With(requireAuth).Get("/my-posts", postHandler.HandleMyPosts)
		r.With(requireAuth).Post("/", postHandler.HandleCreate)
		r.Get("/{id}", postHandler.HandleGet)
		r.With(requireAuth).Put("/{id}", postHandler.HandleUpdate)
		r.With(requireAuth).Delete("/{id}", postHandler.HandleDelete)
		r.Get("/{id}/comments", commentHandler.HandleList)
		r.With(requireAuth).Post("/{id}/comments", commentHandler.HandleCreate)
	})

	r.With(requireAuth).Delete("/api/comments/{id}", commentHandler.HandleDelete)
}
