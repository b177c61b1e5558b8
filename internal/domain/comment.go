package domain

import (
	"context"
	"time"
)

// Comment is a reader response attached to a post.
type Comment struct {
	ID        int64
	PostID    int64
	AuthorID  int64
	Author    *Author
	Content   string
	CreatedAt time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
	Delete(ctx context.Context, id int64) error
}
