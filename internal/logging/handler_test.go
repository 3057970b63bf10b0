package logging

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
)

func newBufferedLogger() (*slog.Logger, *RecentHandler) {
	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	recent := NewRecentHandler(inner)
	return slog.New(recent), recent
}

func TestRecentHandlerCapturesWarnAndAbove(t *testing.T) {
	logger, recent := newBufferedLogger()

	logger.Info("just info")
	logger.Warn("a warning", "key", "value")
	logger.Error("an error")

	events := recent.Recent()
	if len(events) != 2 {
		t.Fatalf("Recent() returned %d events, want 2", len(events))
	}
	if events[0].Message != "an error" {
		t.Errorf("newest event = %q, want the error", events[0].Message)
	}
	if events[1].Message != "a warning" {
		t.Errorf("second event = %q, want the warning", events[1].Message)
	}
	if events[1].Attrs["key"] != "value" {
		t.Errorf("warning attrs = %v, want key=value", events[1].Attrs)
	}
}

func TestRecentHandlerRingBufferWraps(t *testing.T) {
	logger, recent := newBufferedLogger()

	for i := 0; i < DefaultRecentCapacity+10; i++ {
		logger.Warn(fmt.Sprintf("warn %d", i))
	}

	events := recent.Recent()
	if len(events) != DefaultRecentCapacity {
		t.Fatalf("Recent() returned %d events, want capacity %d", len(events), DefaultRecentCapacity)
	}
	want := fmt.Sprintf("warn %d", DefaultRecentCapacity+9)
	if events[0].Message != want {
		t.Errorf("newest event = %q, want %q", events[0].Message, want)
	}
}

func TestRecentHandlerWithAttrsSharesBuffer(t *testing.T) {
	logger, recent := newBufferedLogger()

	scoped := logger.With("component", "store")
	scoped.Warn("scoped warning")

	events := recent.Recent()
	if len(events) != 1 {
		t.Fatalf("Recent() returned %d events, want 1", len(events))
	}
	if events[0].Attrs["component"] != "store" {
		t.Errorf("attrs = %v, want component=store", events[0].Attrs)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
