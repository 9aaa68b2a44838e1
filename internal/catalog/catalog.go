// Package catalog keeps an index of rendered scenes in SQLite.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/crochess/scenes/internal/render"
	"github.com/crochess/scenes/pkg/scene"
)

//go:embed schema.sql
var schema string

var ErrNotFound = errors.New("scene not found")

// Record describes one rendered scene.
type Record struct {
	Name        string    `json:"name"`
	RunID       string    `json:"run_id"`
	Board       string    `json:"board"`
	Caption     string    `json:"caption"`
	Path        string    `json:"path"`
	Annotations int       `json:"annotations"`
	Legal       int       `json:"legal"`
	Illegal     int       `json:"illegal"`
	Action      int       `json:"action"`
	CreatedAt   time.Time `json:"created_at"`
}

// Filter selects records; empty fields match everything.
type Filter struct {
	Board string
	RunID string
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	var dsn = filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// BeginRun registers a new export run and returns its id.
func (s *Store) BeginRun(ctx context.Context, scenarios []string) (string, error) {
	var id = uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, scenarios, started_at) VALUES (?, ?, ?)`,
		id, strings.Join(scenarios, ","), time.Now().UTC().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// SaveScene stores or replaces the record of a scene rendered to path.
// Path is stored absolute.
func (s *Store) SaveScene(ctx context.Context, runID string, sc *scene.Scene, path string) error {
	if sc.FileName == "" {
		return fmt.Errorf("scene %v has no file name", sc.Name)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("save scene %v: %w", sc.FileName, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scenes (name, run_id, board, caption, path, annotations, legal, illegal, action, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   run_id = excluded.run_id,
		   board = excluded.board,
		   caption = excluded.caption,
		   path = excluded.path,
		   annotations = excluded.annotations,
		   legal = excluded.legal,
		   illegal = excluded.illegal,
		   action = excluded.action,
		   created_at = excluded.created_at`,
		sc.FileName,
		runID,
		sc.Board.Type.Label(),
		render.Caption(sc),
		path,
		len(sc.Annotations()),
		sc.Count(scene.Legal),
		sc.Count(scene.Illegal),
		sc.Count(scene.Action),
		time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("save scene %v: %w", sc.FileName, err)
	}
	return nil
}

const selectRecord = `SELECT name, run_id, board, caption, path, annotations, legal, illegal, action, created_at FROM scenes`

func (s *Store) ListScenes(ctx context.Context, filter Filter) ([]Record, error) {
	var query = selectRecord
	var where []string
	var args []any
	if filter.Board != "" {
		where = append(where, "board = ? COLLATE NOCASE")
		args = append(args, filter.Board)
	}
	if filter.RunID != "" {
		where = append(where, "run_id = ?")
		args = append(args, filter.RunID)
	}
	if len(where) != 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	defer rows.Close()
	var result []Record
	for rows.Next() {
		var rec, err = scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (s *Store) Scene(ctx context.Context, name string) (Record, error) {
	var row = s.db.QueryRowContext(ctx, selectRecord+" WHERE name = ?", name)
	var rec, err = scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%v: %w", name, ErrNotFound)
	}
	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	var createdAt int64
	var err = row.Scan(&rec.Name, &rec.RunID, &rec.Board, &rec.Caption, &rec.Path,
		&rec.Annotations, &rec.Legal, &rec.Illegal, &rec.Action, &createdAt)
	if err != nil {
		return Record{}, err
	}
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	return rec, nil
}
