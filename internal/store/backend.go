// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// StorageKey is the fixed key the content snapshot is stored under. All
// backends persist the root object as a single blob under this key.
const StorageKey = "metaon_cms_data"

// ErrNoSnapshot is returned by Backend.Load when no snapshot has been
// written yet. The store seeds default content in that case.
var ErrNoSnapshot = errors.New("store: no snapshot")

// Backend persists the serialized content snapshot. Every mutation writes
// the full snapshot; there is no per-entity storage.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// FileBackend stores the snapshot as a single JSON file on disk.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend. The parent directory is created
// on the first save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the snapshot file.
func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return data, nil
}

// Save writes the snapshot atomically via a temp file and rename, so a
// crash mid-write never leaves a truncated snapshot behind.
func (b *FileBackend) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// MemoryBackend keeps the snapshot in memory. Used in tests and as a
// throwaway backend; nothing survives a restart.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte

	// FailSaves makes every Save return an error, for testing the
	// divergence between in-memory and durable state.
	FailSaves bool

	// SaveCount counts successful saves.
	SaveCount int
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Load returns the stored blob, or ErrNoSnapshot when nothing was saved.
func (b *MemoryBackend) Load(_ context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

// Save stores a copy of the blob.
func (b *MemoryBackend) Save(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailSaves {
		return errors.New("memory backend: saves disabled")
	}
	b.data = make([]byte, len(data))
	copy(b.data, data)
	b.SaveCount++
	return nil
}
