package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/openpress/openpress/internal/domain"
)

// Pagination defaults. Missing, zero, or negative page inputs clamp to
// these rather than producing negative offsets.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PostService handles post listing, retrieval, and ownership-guarded
// mutation.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// PostUpdate carries a partial update. Empty Title or Content leave the
// stored value unchanged; a non-nil Tags replaces the stored list even when
// empty. The title/content-vs-tags asymmetry is part of the API contract.
type PostUpdate struct {
	Title   string
	Content string
	Tags    *[]string
}

// List executes a search/sort/paginate query and assembles the pagination
// envelope. The query is normalized first: out-of-range page and size fall
// back to the defaults, unknown sort fields to newest-first.
func (s *PostService) List(ctx context.Context, q domain.ListQuery) (*domain.PostPage, error) {
	q = normalizeQuery(q)

	posts, total, err := s.posts.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + q.PageSize - 1) / q.PageSize
	}

	return &domain.PostPage{
		Posts:       posts,
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: q.Page,
	}, nil
}

// GetByID returns a single post with its author resolved.
func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// ListByAuthor returns all of an author's posts, newest first, unpaginated.
func (s *PostService) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	posts, err := s.posts.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// Create publishes a new post authored by the given user.
func (s *PostService) Create(ctx context.Context, authorID int64, title, content string, tags []string) (*domain.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}
	if tags == nil {
		tags = []string{}
	}

	post := &domain.Post{
		Title:    title,
		Content:  content,
		Tags:     tags,
		AuthorID: authorID,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	// Re-read to resolve the author reference.
	return s.posts.GetByID(ctx, post.ID)
}

// Update applies a partial update to a post owned by the requester.
func (s *PostService) Update(ctx context.Context, requesterID, id int64, update PostUpdate) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requesterID {
		return nil, domain.ErrForbidden
	}

	if update.Title != "" {
		post.Title = update.Title
	}
	if update.Content != "" {
		post.Content = update.Content
	}
	if update.Tags != nil {
		post.Tags = *update.Tags
		if post.Tags == nil {
			post.Tags = []string{}
		}
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	return s.posts.GetByID(ctx, id)
}

// Delete removes a post owned by the requester.
func (s *PostService) Delete(ctx context.Context, requesterID, id int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return domain.ErrForbidden
	}

	return s.posts.Delete(ctx, id)
}

func normalizeQuery(q domain.ListQuery) domain.ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.SortOrder != domain.SortAsc {
		q.SortOrder = domain.SortDesc
	}
	return q
}
