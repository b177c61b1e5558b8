package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openpress/openpress/internal/domain"
)

// postRepo implements domain.PostRepository using SQLite.
type postRepo struct {
	db *sql.DB
}

// sortColumns whitelists the post fields a listing may sort on. Anything
// else falls back to newest-first; raw query input never reaches the SQL.
var sortColumns = map[string]string{
	"createdAt": "p.created_at",
	"updatedAt": "p.updated_at",
	"title":     "p.title",
}

const postColumns = `p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
	u.id, u.username, u.email, u.created_at`

const postFrom = `FROM posts p LEFT JOIN users u ON u.id = p.author_id`

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO posts (title, content, author_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		post.Title, post.Content, post.AuthorID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	postID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get post id: %w", err)
	}

	if err := insertTags(ctx, tx, postID, post.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	post.ID = postID
	post.CreatedAt = now
	post.UpdatedAt = now
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` `+postFrom+` WHERE p.id = ?`, id)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	tags, err := r.loadTags(ctx, []int64{post.ID})
	if err != nil {
		return nil, err
	}
	post.Tags = tags[post.ID]
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post, nil
}

func (r *postRepo) List(ctx context.Context, q domain.ListQuery) ([]domain.Post, int, error) {
	var (
		where string
		args  []any
	)
	if q.Search != "" {
		// Case-insensitive substring containment over title OR content.
		// instr avoids LIKE wildcard semantics in the needle.
		needle := strings.ToLower(q.Search)
		where = `WHERE (instr(lower(p.title), ?) > 0 OR instr(lower(p.content), ?) > 0)`
		args = append(args, needle, needle)
	}

	var total int
	countArgs := append([]any{}, args...)
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts p `+where, countArgs...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	column, ok := sortColumns[q.SortField]
	direction := "DESC"
	if !ok {
		column = "p.created_at"
	} else if q.SortOrder == domain.SortAsc {
		direction = "ASC"
	}

	offset := (q.Page - 1) * q.PageSize
	args = append(args, q.PageSize, offset)

	// Ties break on id, i.e. insertion order.
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+postColumns+` `+postFrom+` `+where+
			` ORDER BY `+column+` `+direction+`, p.id ASC LIMIT ? OFFSET ?`,
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachTags(ctx, posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepo) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+postColumns+` `+postFrom+
			` WHERE p.author_id = ? ORDER BY p.created_at DESC, p.id DESC`,
		authorID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	defer rows.Close()

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachTags(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) Update(ctx context.Context, post *domain.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		post.Title, post.Content, now, post.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	// Replace the tag list wholesale, preserving order.
	if _, err := tx.ExecContext(ctx, "DELETE FROM post_tags WHERE post_id = ?", post.ID); err != nil {
		return fmt.Errorf("delete tags: %w", err)
	}
	if err := insertTags(ctx, tx, post.ID, post.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	post.UpdatedAt = now
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
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

func insertTags(ctx context.Context, tx *sql.Tx, postID int64, tags []string) error {
	for i, tag := range tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_tags (post_id, sort_order, tag) VALUES (?, ?, ?)`,
			postID, i, tag,
		); err != nil {
			return fmt.Errorf("insert tag: %w", err)
		}
	}
	return nil
}

// loadTags returns the ordered tag list for each of the given post IDs.
func (r *postRepo) loadTags(ctx context.Context, postIDs []int64) (map[int64][]string, error) {
	if len(postIDs) == 0 {
		return map[int64][]string{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(postIDs)), ",")
	args := make([]any, len(postIDs))
	for i, id := range postIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT post_id, tag FROM post_tags WHERE post_id IN (`+placeholders+`)
		 ORDER BY post_id, sort_order`, args...)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[int64][]string)
	for rows.Next() {
		var (
			postID int64
			tag    string
		)
		if err := rows.Scan(&postID, &tag); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags[postID] = append(tags[postID], tag)
	}
	return tags, rows.Err()
}

func (r *postRepo) attachTags(ctx context.Context, posts []domain.Post) error {
	ids := make([]int64, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	tags, err := r.loadTags(ctx, ids)
	if err != nil {
		return err
	}
	for i := range posts {
		if t := tags[posts[i].ID]; t != nil {
			posts[i].Tags = t
		} else {
			posts[i].Tags = []string{}
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost reads one post row including the left-joined author columns.
// A post whose author row is gone gets a nil Author.
func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		post            domain.Post
		authorID        sql.NullInt64
		authorUsername  sql.NullString
		authorEmail     sql.NullString
		authorCreatedAt sql.NullTime
	)
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		&authorID, &authorUsername, &authorEmail, &authorCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if authorID.Valid {
		post.Author = &domain.Author{
			ID:        authorID.Int64,
			Username:  authorUsername.String,
			Email:     authorEmail.String,
			CreatedAt: authorCreatedAt.Time,
		}
	}
	return &post, nil
}

func collectPosts(rows *sql.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}
