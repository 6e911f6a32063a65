// Package store persists generated recipes in a SQLite database under the
// simmer home directory.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"simmer/internal/recipe"
)

const schema = `
CREATE TABLE IF NOT EXISTS recipes (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    prompt      TEXT NOT NULL,
    recipe_json TEXT NOT NULL,
    created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recipes_created_at ON recipes(created_at);
`

// Saved is a stored recipe with its request context.
type Saved struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Prompt    string        `json:"prompt"`
	Recipe    recipe.Recipe `json:"recipe"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store manages recipe persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the recipe database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts a new recipe and returns the stored record.
func (s *Store) Save(ctx context.Context, prompt string, r recipe.Recipe) (*Saved, error) {
	recipeJSON, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal recipe: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO recipes (id, title, prompt, recipe_json, created_at) VALUES (?, ?, ?, ?, ?)`,
		id,
		r.Title,
		prompt,
		string(recipeJSON),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}

	return s.Get(ctx, id)
}

// Get fetches a saved recipe by id. Returns nil when not found.
func (s *Store) Get(ctx context.Context, id string) (*Saved, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, title, prompt, recipe_json, created_at FROM recipes WHERE id = ?`,
		id,
	)
	saved, err := scanSaved(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return saved, nil
}

// List returns all saved recipes, newest first.
func (s *Store) List(ctx context.Context) ([]*Saved, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, title, prompt, recipe_json, created_at FROM recipes ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var out []*Saved
	for rows.Next() {
		saved, err := scanSaved(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, saved)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return out, nil
}

// Delete removes a saved recipe. Returns false when the id did not exist.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// Clear removes every saved recipe.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return fmt.Errorf("clear recipes: %w", err)
	}
	return nil
}

func scanSaved(scanner interface{ Scan(dest ...any) error }) (*Saved, error) {
	var (
		id         string
		title      string
		prompt     string
		recipeJSON string
		createdRaw string
	)
	if err := scanner.Scan(&id, &title, &prompt, &recipeJSON, &createdRaw); err != nil {
		return nil, err
	}

	saved := &Saved{ID: id, Title: title, Prompt: prompt}
	if err := json.Unmarshal([]byte(recipeJSON), &saved.Recipe); err != nil {
		return nil, fmt.Errorf("unmarshal recipe json: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		saved.CreatedAt = ts
	}
	return saved, nil
}
