package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/openpress/openpress/internal/domain"
	"github.com/openpress/openpress/internal/repository/sqlite/migrations"
)

// DB wraps a SQLite connection and hands out repository implementations.
type DB struct {
	sqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite allows a single writer; serialize access through one connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.sqlDB)
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sqlDB.Close()
}

// Users returns the SQLite-backed user repository.
func (d *DB) Users() domain.UserRepository {
	return &UserRepository{db: d.sqlDB}
}

// Posts returns the SQLite-backed post repository.
func (d *DB) Posts() domain.PostRepository {
	return &postRepo{db: d.sqlDB}
}

// Comments returns the SQLite-backed comment repository.
func (d *DB) Comments() domain.CommentRepository {
	return &commentRepo{db: d.sqlDB}
}

// WipeContent deletes all posts and their comments and tags. Used by the
// seed command to reset sample data; user accounts are preserved.
func (d *DB) WipeContent(ctx context.Context) error {
	if _, err := d.sqlDB.ExecContext(ctx, "DELETE FROM posts"); err != nil {
		return fmt.Errorf("wipe posts: %w", err)
	}
	return nil
}
