package db

import (
	"context"
	"log/slog"
	"sync"
)

// Setter is the durable side of a Writer
type Setter interface {
	Set(ctx context.Context, key, value string) error
}

// Writer applies fire-and-forget writes on a background goroutine.
//
// Pending writes are kept per key: a Put for a key that is still queued
// replaces the queued value, and a Put for a key that is being written is
// queued again behind it. The value that reaches the store last is always
// the one passed to the most recent Put.
type Writer struct {
	store  Setter
	logger *slog.Logger

	mu       sync.Mutex
	idle     *sync.Cond
	pending  map[string]string
	order    []string
	inflight bool
	closed   bool

	wake chan struct{}
	done chan struct{}
}

// NewWriter starts a writer over store
func NewWriter(store Setter, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Writer{
		store:   store,
		logger:  logger.With("component", "writer"),
		pending: make(map[string]string),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.idle = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// Put schedules value to be written under key and returns immediately
func (w *Writer) Put(key, value string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn("write dropped after close", "key", key)
		return
	}
	if _, queued := w.pending[key]; !queued {
		w.order = append(w.order, key)
	}
	w.pending[key] = value
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Flush blocks until every write scheduled so far has been attempted
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for len(w.order) > 0 || w.inflight {
		w.idle.Wait()
	}
}

// Close drains pending writes and stops the background goroutine
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.closed = true
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		key, value, ok, closed := w.next()
		if ok {
			w.write(key, value)
			continue
		}
		if closed {
			return
		}
		<-w.wake
	}
}

func (w *Writer) next() (key, value string, ok, closed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.order) == 0 {
		return "", "", false, w.closed
	}
	key = w.order[0]
	w.order = w.order[1:]
	value = w.pending[key]
	delete(w.pending, key)
	w.inflight = true
	return key, value, true, w.closed
}

func (w *Writer) write(key, value string) {
	if err := w.store.Set(context.Background(), key, value); err != nil {
		w.logger.Error("persist failed", "key", key, "error", err)
	} else {
		w.logger.Debug("persisted", "key", key, "bytes", len(value))
	}

	w.mu.Lock()
	w.inflight = false
	w.idle.Broadcast()
	w.mu.Unlock()
}
