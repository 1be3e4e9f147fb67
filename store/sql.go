// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/picture-perfect/cliparse"
	"github.com/danielhkuo/picture-perfect/db"
)

// SQLBackend stores each logical document as one row. Saves overwrite
// the whole row, so the semantics match the flat-file backend exactly.
type SQLBackend struct {
	conn *sql.DB
}

// OpenSQL connects to the database, verifies the connection and
// creates the schema.
func OpenSQL(backend, databaseURL string) (*SQLBackend, error) {
	driver := "sqlite"
	if backend == cliparse.BackendPostgres {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &SQLBackend{conn: conn}, nil
}

func (s *SQLBackend) Load(name string, into any) error {
	var body string
	err := s.conn.QueryRow(`
		SELECT body FROM document WHERE name = $1
	`, name).Scan(&body)

	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load store %q: %w", name, err)
	}

	if err := json.Unmarshal([]byte(body), into); err != nil {
		return fmt.Errorf("malformed store %q: %w", name, err)
	}
	return nil
}

func (s *SQLBackend) Save(name string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode store %q: %w", name, err)
	}

	_, err = s.conn.Exec(`
		INSERT INTO document (name, body, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`, name, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save store %q: %w", name, err)
	}
	return nil
}

func (s *SQLBackend) Close() error {
	return s.conn.Close()
}
