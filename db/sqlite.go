package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// UniqueConstrain is the extended sqlite code of a primary key violation
	UniqueConstrain       = 1555
	// uniqueColumnConstrain is the extended sqlite code of a UNIQUE column violation
	uniqueColumnConstrain = 2067

	dirPermissions = 0o750
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// NewSQLiteDB opens the sqlite database at dbPath, creating its directory if needed
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return nil, fmt.Errorf("creating db dir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		PRAGMA foreign_keys = ON;
		pragma journal_mode = WAL;
		pragma synchronous = normal;
		pragma busy_timeout = 5000;
		pragma journal_size_limit  = 6144000;
	`)
	return db, err
}

func ReturnErrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// ReturnErrAlreadyExists maps key violations to ErrAlreadyExists
func ReturnErrAlreadyExists(err error) error {
	if sqliteErr, ok := SQLiteErr(err); ok {
		code := int(sqliteErr.ExtendedCode)
		if code == UniqueConstrain || code == uniqueColumnConstrain {
			return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}
	}
	return err
}
