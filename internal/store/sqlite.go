package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ppiankov/planreader/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS takeoffs (
	id         TEXT PRIMARY KEY,
	filename   TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	line_items INTEGER NOT NULL DEFAULT 0,
	body       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS takeoffs_created_at ON takeoffs (created_at DESC);
`

// SQLite stores takeoffs as JSON documents in a single table
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and migrates) the database at path
func OpenSQLite(path string) (*SQLite, error) {
	dsn := path
	if path != ":memory:" {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection: keeps :memory: databases coherent and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Save upserts a takeoff
func (s *SQLite) Save(ctx context.Context, t *model.Takeoff) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("save: takeoff ID is required")
	}
	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal takeoff: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO takeoffs (id, filename, created_at, line_items, body)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			filename = excluded.filename,
			created_at = excluded.created_at,
			line_items = excluded.line_items,
			body = excluded.body`,
		t.ID, t.Project.Filename, t.CreatedAt.UTC().Format(time.RFC3339Nano), len(t.Materials), string(body))
	if err != nil {
		return fmt.Errorf("save takeoff %s: %w", t.ID, err)
	}
	return nil
}

// Get loads a takeoff by ID
func (s *SQLite) Get(ctx context.Context, id string) (*model.Takeoff, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM takeoffs WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get takeoff %s: %w", id, err)
	}

	var t model.Takeoff
	if err := json.Unmarshal([]byte(body), &t); err != nil {
		return nil, fmt.Errorf("unmarshal takeoff: %w", err)
	}
	return &t, nil
}

// List returns records newest first
func (s *SQLite) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, created_at, line_items FROM takeoffs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list takeoffs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		var r Record
		var created string
		if err := rows.Scan(&r.ID, &r.Filename, &created, &r.LineItems); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("record %s: bad created_at: %w", r.ID, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list takeoffs: %w", err)
	}
	sortRecords(out)
	return out, nil
}

// Delete removes a takeoff
func (s *SQLite) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM takeoffs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete takeoff %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}
