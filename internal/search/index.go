// Package search maintains a SQLite FTS5 index over the catalog so the
// library can be queried by keyword while offline.
package search

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/nomadlib/curator/internal/types"
)

// DefaultLimit bounds result sets when the caller does not pass a limit.
const DefaultLimit = 20

// Index wraps the SQLite database holding the full-text index.
type Index struct {
	db *sql.DB
}

// Hit is one search result with its FTS rank already applied by ordering.
type Hit struct {
	ID       string
	Title    string
	Category types.Category
	Tier     types.Tier
	SizeMB   float64
	Summary  string
}

// Open opens (or creates) the index database at path.
func Open(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open search index %s: %w", path, err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

// Close releases the underlying database handle.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func initSchema(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS docs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			tier TEXT NOT NULL,
			size_mb REAL NOT NULL,
			summary TEXT NOT NULL
		)`,
		// FTS5 virtual tables need raw SQL; no ORM layer sits in front.
		`CREATE VIRTUAL TABLE IF NOT EXISTS docs_fts USING fts5(
			title, summary, content='docs', content_rowid='rowid'
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create search schema: %w", err)
		}
	}
	return nil
}

// Rebuild replaces the index contents with the given catalog items. The
// index is derived state: rebuilding from the catalog is always safe.
func (ix *Index) Rebuild(ctx context.Context, items []types.CatalogItem) error {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin index rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM docs"); err != nil {
		return fmt.Errorf("failed to clear docs table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO docs_fts(docs_fts) VALUES('delete-all')"); err != nil {
		return fmt.Errorf("failed to clear FTS table: %w", err)
	}

	for _, item := range items {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO docs(id, title, category, tier, size_mb, summary) VALUES(?, ?, ?, ?, ?, ?)",
			item.ID, item.Title, string(item.Category), string(item.Tier), item.SizeMB, item.Summary,
		)
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", item.ID, err)
		}
		rowid, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to resolve rowid for %s: %w", item.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO docs_fts(rowid, title, summary) VALUES(?, ?, ?)",
			rowid, item.Title, item.Summary,
		); err != nil {
			return fmt.Errorf("failed to index text for %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit index rebuild: %w", err)
	}
	return nil
}

// Search runs an FTS5 MATCH query, optionally narrowed to one category,
// ordered by relevance rank.
func (ix *Index) Search(ctx context.Context, query string, category types.Category, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	sqlText := `
		SELECT d.id, d.title, d.category, d.tier, d.size_mb, d.summary
		FROM docs d
		JOIN docs_fts fts ON d.rowid = fts.rowid
		WHERE docs_fts MATCH ?
	`
	args := []any{query}

	if category != "" {
		sqlText += " AND d.category = ?"
		args = append(args, string(category))
	}

	sqlText += " ORDER BY rank LIMIT ?"
	args = append(args, limit)

	rows, err := ix.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var hits []Hit
	for rows.Next() {
		var h Hit
		var category, tier string
		if err := rows.Scan(&h.ID, &h.Title, &category, &tier, &h.SizeMB, &h.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan search hit: %w", err)
		}
		h.Category = types.Category(category)
		h.Tier = types.Tier(tier)
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// Count returns the number of indexed documents.
func (ix *Index) Count(ctx context.Context) (int, error) {
	var n int
	err := ix.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM docs").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count indexed docs: %w", err)
	}
	return n, nil
}
