// Package settings persists the postkit settings record. The record is a
// single flat JSON blob in a one-row SQLite table; loading shallow-merges the
// stored record over the defaults, so keys missing from disk keep their
// default value.
package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Settings is the persisted configuration record.
type Settings struct {
	MySetting string `json:"mySetting"`
	Editor    string `json:"editor,omitempty"`
	Archetype string `json:"archetype,omitempty"`
}

// Defaults returns the record used when nothing has been saved yet. An empty
// editor falls back to $EDITOR at the point of use.
func Defaults() Settings {
	return Settings{MySetting: "test"}
}

// Keys lists the editable setting keys.
var Keys = []string{"mySetting", "editor", "archetype"}

// Get returns the value of a setting by key.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "mySetting":
		return s.MySetting, nil
	case "editor":
		return s.Editor, nil
	case "archetype":
		return s.Archetype, nil
	}
	return "", fmt.Errorf("unknown setting %q", key)
}

// Set updates the value of a setting by key.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "mySetting":
		s.MySetting = value
	case "editor":
		s.Editor = value
	case "archetype":
		s.Archetype = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// Store persists Settings in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the settings database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns the stored record merged over the defaults. A database with no
// saved record yields exactly Defaults().
func (s *Store) Load(ctx context.Context) (Settings, error) {
	out := Defaults()

	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("load settings: %w", err)
	}

	// Unmarshaling over the defaults gives the shallow merge: present keys
	// override, missing keys keep their default.
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return Defaults(), fmt.Errorf("decode settings: %w", err)
	}
	return out, nil
}

// Save persists the whole record, replacing any previous one.
func (s *Store) Save(ctx context.Context, cfg Settings) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO settings (id, data, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(b), now)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
