package kv

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/matheus3301/chatzy/internal/kv/migrations"
)

// ErrDirtySchema means an earlier migration stopped halfway. The file needs
// manual repair before the profile can be opened.
var ErrDirtySchema = errors.New("kv schema is dirty")

// Schema describes the kv table of an opened database.
type Schema struct {
	Version     uint
	Applied     bool
	JournalMode string
}

// Open opens the profile database at path and brings the kv table up to
// date. The database must end up in WAL mode so the daemon and a reader can
// share the file.
func Open(path string) (*SQLite, *Schema, error) {
	s, err := openSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	schema, err := s.migrate()
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}
	return s, schema, nil
}

func (s *SQLite) migrate() (*Schema, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	driver, err := sqlite3.WithInstance(s.db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("migration instance: %w", err)
	}

	applied := true
	err = m.Up()
	var dirty migrate.ErrDirty
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		applied = false
	case errors.As(err, &dirty):
		return nil, fmt.Errorf("%w at version %d", ErrDirtySchema, dirty.Version)
	case err != nil:
		return nil, fmt.Errorf("migration up: %w", err)
	}

	version, _, err := m.Version()
	if err != nil {
		return nil, fmt.Errorf("schema version: %w", err)
	}

	var mode string
	if err := s.db.QueryRow(`PRAGMA journal_mode`).Scan(&mode); err != nil {
		return nil, fmt.Errorf("journal mode: %w", err)
	}
	if mode != "wal" {
		return nil, fmt.Errorf("journal mode is %q, want wal", mode)
	}

	return &Schema{Version: version, Applied: applied, JournalMode: mode}, nil
}
