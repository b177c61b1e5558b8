package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/openpress/openpress/internal/domain"
)

// commentRepo implements domain.CommentRepository using SQLite.
type commentRepo struct {
	db *sql.DB
}

const commentColumns = `c.id, c.post_id, c.author_id, c.content, c.created_at,
	u.id, u.username, u.email, u.created_at`

func (r *commentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (post_id, author_id, content, created_at)
		 VALUES (?, ?, ?, ?)`,
		comment.PostID, comment.AuthorID, comment.Content, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	comment.ID = id
	comment.CreatedAt = now
	return nil
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := scanComment(r.db.QueryRowContext(ctx,
		`SELECT `+commentColumns+`
		 FROM comments c LEFT JOIN users u ON u.id = c.author_id
		 WHERE c.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return comment, nil
}

func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+commentColumns+`
		 FROM comments c LEFT JOIN users u ON u.id = c.author_id
		 WHERE c.post_id = ? ORDER BY c.created_at DESC, c.id DESC`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var (
		comment         domain.Comment
		authorID        sql.NullInt64
		authorUsername  sql.NullString
		authorEmail     sql.NullString
		authorCreatedAt sql.NullTime
	)
	err := row.Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content, &comment.CreatedAt,
		&authorID, &authorUsername, &authorEmail, &authorCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if authorID.Valid {
		comment.Author = &domain.Author{
			ID:        authorID.Int64,
			Username:  authorUsername.String,
			Email:     authorEmail.String,
			CreatedAt: authorCreatedAt.Time,
		}
	}
	return &comment, nil
}
