package domain

import (
	"context"
	"time"
)

// SortOrder is the direction of a post listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Author is the display projection of a post's owner, resolved from the
// stored author reference. A nil Author on a post means the referenced user
// no longer exists; callers choose how to present that.
type Author struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
}

// Post is a user-authored article. AuthorID is immutable after creation.
type Post struct {
	ID        int64
	Title     string
	Content   string
	Tags      []string
	AuthorID  int64
	Author    *Author
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListQuery describes a post listing request: an optional case-insensitive
// substring search over title and content, a sort field and direction, and
// 1-based pagination.
type ListQuery struct {
	Search    string
	SortField string
	SortOrder SortOrder
	Page      int
	PageSize  int
}

// PostPage is the pagination envelope for a post listing.
type PostPage struct {
	Posts       []Post
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

// PostRepository defines persistence operations for posts.
// List returns one page of matching posts plus the total match count
// before pagination; the query must already be normalized.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context, q ListQuery) ([]Post, int, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
}
