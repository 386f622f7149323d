package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/listenupapp/listenup-client/internal/models"
	"github.com/listenupapp/listenup-client/pkg/api"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Index is the on-device search index backing offline search. It is
// maintained by the pull mergers (upsert on merge, delete on server
// delete) and queried when the server is unreachable.
type Index struct {
	db *sql.DB
}

// New creates the search index at dbPath. Use ":memory:" for an
// in-memory index (useful for testing).
func New(ctx context.Context, dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite with WAL mode supports many readers but one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	idx := &Index{db: db}
	if err := idx.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return idx, nil
}

// Close closes the database connection.
func (i *Index) Close() error {
	return i.db.Close()
}

func (i *Index) runMigrations() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	goose.SetBaseFS(embedMigrations)
	if err := goose.Up(i.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

// IndexBook upserts a book. Contributor names are indexed alongside the
// title so an author search finds their books offline.
func (i *Index) IndexBook(ctx context.Context, book *models.Book) error {
	text := book.Title + " " + book.Subtitle
	for _, c := range book.Contributors {
		text += " " + c.Name
	}
	return i.upsert(ctx, book.ID, "book", book.Title, book.Subtitle, text)
}

// IndexContributor upserts a contributor.
func (i *Index) IndexContributor(ctx context.Context, c *models.Contributor) error {
	return i.upsert(ctx, c.ID, "contributor", c.Name, "", c.Name)
}

// IndexSeries upserts a series.
func (i *Index) IndexSeries(ctx context.Context, s *models.Series) error {
	return i.upsert(ctx, s.ID, "series", s.Name, "", s.Name)
}

// Remove drops an entity from the index. Removing an unknown ID is a
// no-op.
func (i *Index) Remove(ctx context.Context, entityID string) error {
	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM search_tokens WHERE entity_id = ?", entityID); err != nil {
		return fmt.Errorf("failed to delete tokens: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM search_entries WHERE entity_id = ?", entityID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return tx.Commit()
}

func (i *Index) upsert(ctx context.Context, entityID, entityType, name, subtitle, text string) error {
	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx,
		`INSERT INTO search_entries (entity_id, entity_type, name, subtitle)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(entity_id) DO UPDATE SET entity_type = excluded.entity_type,
		     name = excluded.name, subtitle = excluded.subtitle`,
		entityID, entityType, name, subtitle)
	if err != nil {
		return fmt.Errorf("failed to upsert entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM search_tokens WHERE entity_id = ?", entityID); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	for _, token := range Tokenize(text) {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO search_tokens (token, entity_id) VALUES (?, ?)", token, entityID); err != nil {
			return fmt.Errorf("failed to insert token: %w", err)
		}
	}
	return tx.Commit()
}

var tokenSplit = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Tokenize lowercases and splits text into index tokens, dropping
// duplicates.
func Tokenize(text string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, t := range tokenSplit.Split(strings.ToLower(text), -1) {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tokens = append(tokens, t)
	}
	return tokens
}

// Search runs a token-prefix query against the index. entityType
// narrows to one type when non-empty. Results matching more query
// tokens rank higher; ties break on name.
func (i *Index) Search(ctx context.Context, query, entityType string, limit int) ([]api.SearchResult, error) {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	var sb strings.Builder
	args := make([]any, 0, len(tokens)+2)

	sb.WriteString(`SELECT e.entity_id, e.entity_type, e.name, e.subtitle, COUNT(DISTINCT t.token) AS hits
		FROM search_entries e
		JOIN search_tokens t ON t.entity_id = e.entity_id
		WHERE (`)
	for n, token := range tokens {
		if n > 0 {
			sb.WriteString(" OR ")
		}
		sb.WriteString("t.token LIKE ? || '%'")
		args = append(args, token)
	}
	sb.WriteString(")")
	if entityType != "" {
		sb.WriteString(" AND e.entity_type = ?")
		args = append(args, entityType)
	}
	sb.WriteString(` GROUP BY e.entity_id, e.entity_type, e.name, e.subtitle
		ORDER BY hits DESC, e.name ASC LIMIT ?`)
	args = append(args, limit)

	rows, err := i.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	defer rows.Close()

	var results []api.SearchResult
	for rows.Next() {
		var r api.SearchResult
		var hits int
		if err := rows.Scan(&r.ID, &r.Type, &r.Name, &r.Subtitle, &hits); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.Score = float64(hits) / float64(len(tokens))
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	return results, nil
}
