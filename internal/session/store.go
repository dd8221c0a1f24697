// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session persists generation results between assistant runs, so a
// plan produced in one invocation can feed topic suggestions and exports in
// later ones.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/content-assistant/pkg/types"
)

const dbFile = "assistant.db"

// Store manages the session SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the session database at dataDir/assistant.db,
// creating the schema if it does not exist.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS generations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			niche TEXT,
			topic TEXT,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_generations_kind ON generations(kind)`,
		`CREATE TABLE IF NOT EXISTS plan_topics (
			generation_id INTEGER NOT NULL REFERENCES generations(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			topic TEXT NOT NULL,
			PRIMARY KEY (generation_id, position)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores a generation and returns its assigned ID.
func (s *Store) Save(gen types.Generation) (int64, error) {
	createdAt := gen.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO generations (kind, niche, topic, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		string(gen.Kind), gen.Niche, gen.Topic, gen.Content, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting generation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading insert id: %w", err)
	}
	return id, nil
}

// Get returns one stored generation by ID.
func (s *Store) Get(id int64) (*types.Generation, error) {
	row := s.db.QueryRow(
		`SELECT id, kind, niche, topic, content, created_at FROM generations WHERE id = ?`, id,
	)
	gen, err := scanGeneration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("generation %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading generation %d: %w", id, err)
	}
	return gen, nil
}

// List returns stored generations newest first, optionally filtered by
// kind. An empty kind matches everything. limit <= 0 means no limit.
func (s *Store) List(kind types.GenerationKind, limit int) ([]types.Generation, error) {
	query := `SELECT id, kind, niche, topic, content, created_at FROM generations`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing generations: %w", err)
	}
	defer rows.Close()

	var out []types.Generation
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning generation: %w", err)
		}
		out = append(out, *gen)
	}
	return out, rows.Err()
}

// SaveTopics records the topics of a stored plan, preserving plan order.
func (s *Store) SaveTopics(generationID int64, topics []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	for i, topic := range topics {
		if _, err := tx.Exec(
			`INSERT INTO plan_topics (generation_id, position, topic) VALUES (?, ?, ?)`,
			generationID, i, topic,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting topic %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// RecentTopics returns topics from the most recently stored plans, newest
// plan first and in plan order within each plan, up to limit topics.
func (s *Store) RecentTopics(limit int) ([]string, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT topic FROM plan_topics ORDER BY generation_id DESC, position ASC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row scanner) (*types.Generation, error) {
	var gen types.Generation
	var kind, createdAt string
	if err := row.Scan(&gen.ID, &kind, &gen.Niche, &gen.Topic, &gen.Content, &createdAt); err != nil {
		return nil, err
	}
	gen.Kind = types.GenerationKind(kind)
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	gen.CreatedAt = ts
	return &gen, nil
}
