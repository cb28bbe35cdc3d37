package repositories

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// AUTOINCREMENT keeps deleted ids from being reassigned.
const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	author     TEXT NOT NULL DEFAULT 'Anonymous',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// Seed post inserted once, when the table is created empty.
const (
	seedTitle   = "Welcome to the Blog"
	seedContent = "This is the first post. Use the API to create, update, and delete posts."
	seedAuthor  = "Blog Owner"
)

// Open ensures the storage directory exists, opens (creating if needed) the
// SQLite database at path, provisions the posts table, and seeds a single
// post when the table is empty. Callers own the returned handle and must
// close it on shutdown.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One open connection at a time; SQLite serializes writers anyway and
	// this avoids SQLITE_BUSY from concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createPostsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create posts table: %w", err)
	}

	if err := seedIfEmpty(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// seedIfEmpty inserts the seed post when the posts table has no rows.
func seedIfEmpty(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := formatTime(time.Now().UTC())
	_, err := db.Exec(
		`INSERT INTO posts (title, content, author, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		seedTitle, seedContent, seedAuthor, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert seed post: %w", err)
	}
	return nil
}
