// Package logging provides the slog setup for the application plus a
// handler that keeps the most recent WARN and ERROR records in memory so
// the admin dashboard can show them without a log aggregator.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// DefaultRecentCapacity is how many records the recent buffer keeps.
const DefaultRecentCapacity = 50

// Event is a captured log record.
type Event struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// RecentHandler is a slog.Handler that forwards to an inner handler and
// keeps the last N records at WARN level and above in a ring buffer.
type RecentHandler struct {
	inner slog.Handler
	level slog.Level

	mu     sync.Mutex
	events []Event
	next   int
	filled bool
}

// NewRecentHandler wraps the given handler with a recent-events buffer.
func NewRecentHandler(inner slog.Handler) *RecentHandler {
	return &RecentHandler{
		inner:  inner,
		level:  slog.LevelWarn,
		events: make([]Event, DefaultRecentCapacity),
	}
}

// Enabled implements slog.Handler.
func (h *RecentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *RecentHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}
	if r.Level >= h.level {
		h.record(r)
	}
	return nil
}

// WithAttrs implements slog.Handler. The buffer is shared so attribute
// scoping never splits the event history.
func (h *RecentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sharedBufferHandler{inner: h.inner.WithAttrs(attrs), parent: h}
}

// WithGroup implements slog.Handler.
func (h *RecentHandler) WithGroup(name string) slog.Handler {
	return &sharedBufferHandler{inner: h.inner.WithGroup(name), parent: h}
}

func (h *RecentHandler) record(r slog.Record) {
	ev := Event{Time: r.Time, Level: r.Level, Message: r.Message}
	if r.NumAttrs() > 0 {
		ev.Attrs = make(map[string]string, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			ev.Attrs[a.Key] = a.Value.String()
			return true
		})
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.events[h.next] = ev
	h.next++
	if h.next == len(h.events) {
		h.next = 0
		h.filled = true
	}
}

// Recent returns the captured events, newest first.
func (h *RecentHandler) Recent() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := h.next
	if h.filled {
		n = len(h.events)
	}
	out := make([]Event, 0, n)
	for i := 1; i <= n; i++ {
		idx := h.next - i
		if idx < 0 {
			idx += len(h.events)
		}
		out = append(out, h.events[idx])
	}
	return out
}

// sharedBufferHandler keeps derived handlers writing into the parent's
// ring buffer.
type sharedBufferHandler struct {
	inner  slog.Handler
	parent *RecentHandler
}

func (h *sharedBufferHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *sharedBufferHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}
	if r.Level >= h.parent.level {
		h.parent.record(r)
	}
	return nil
}

func (h *sharedBufferHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sharedBufferHandler{inner: h.inner.WithAttrs(attrs), parent: h.parent}
}

func (h *sharedBufferHandler) WithGroup(name string) slog.Handler {
	return &sharedBufferHandler{inner: h.inner.WithGroup(name), parent: h.parent}
}

// ParseLevel maps a config string to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the application logger and returns it together with the
// recent-events handler for the admin dashboard.
func New(level string) (*slog.Logger, *RecentHandler) {
	inner := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	recent := NewRecentHandler(inner)
	return slog.New(recent), recent
}
