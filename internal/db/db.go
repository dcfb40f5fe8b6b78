package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// ErrLocked is returned by Open when another process holds the database
var ErrLocked = errors.New("database is in use by another taskbox process")

// DB wraps the database connection and the key/value table in it
type DB struct {
	*sql.DB
	lock *flock.Flock
}

// Open creates a new database connection at path and initializes the schema
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock database: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		lock.Unlock()
		return nil, err
	}
	// The writer goroutine and the UI loop share one connection
	db.SetMaxOpenConns(1)

	// Initialize schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		lock.Unlock()
		return nil, err
	}

	return &DB{DB: db, lock: lock}, nil
}

// Close closes the connection and releases the process lock
func (db *DB) Close() error {
	err := db.DB.Close()
	if db.lock != nil {
		if uerr := db.lock.Unlock(); err == nil {
			err = uerr
		}
		_ = os.Remove(db.lock.Path())
	}
	return err
}

// DefaultPath returns the path to the database file
func DefaultPath() (string, error) {
	// Use XDG data directory or fallback to home directory
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataDir, "taskbox", "taskbox.db"), nil
}

// Get retrieves the value stored under key. ok is false when the key is absent.
func (db *DB) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageReadError{Key: key, Err: err}
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (db *DB) Set(ctx context.Context, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return &StorageWriteError{Key: key, Err: err}
	}
	return nil
}
