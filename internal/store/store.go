// Package store keeps the in-memory task and category collections and
// writes them through to the persistent store after every change.
package store

import (
	"context"

	"github.com/google/uuid"
)

// Reader reads persisted values
type Reader interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// Writer schedules persisted values without waiting for them
type Writer interface {
	Put(key, value string)
}

// newID returns a time-ordered unique id
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
