// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store is the single source of truth for CMS-editable content and
// form submissions. It owns an in-memory root object holding five
// collections (posts, sections, config, inquiries, assets) mirrored in
// full to a Backend on every mutation.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eduree/metaon/internal/model"
)

// ErrSectionNotFound is returned by UpdateSection when no section with the
// given id exists. The sections collection is left untouched and no
// persistence write happens.
var ErrSectionNotFound = errors.New("store: section not found")

// Store holds the content root object and mirrors it to a Backend. It is
// constructed once at startup and injected into everything that reads or
// writes content. All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	data    *root
	backend Backend
	logger  *slog.Logger

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id generator, for tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a Store over the given backend. Call Load before use.
func New(backend Backend, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot, or seeds default content and performs
// the initial write when no snapshot exists yet.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		s.data = seedRoot(s.now())
		s.logger.Info("no content snapshot found, seeding defaults",
			"posts", len(s.data.Posts), "sections", len(s.data.Sections))
		return s.persistLocked(ctx)
	case err != nil:
		return fmt.Errorf("loading snapshot: %w", err)
	}

	r, err := decodeSnapshot(data)
	if err != nil {
		return err
	}
	s.data = r
	s.logger.Info("content snapshot loaded",
		"posts", len(r.Posts), "inquiries", len(r.Inquiries), "assets", len(r.Assets))
	return nil
}

// Snapshot returns the serialized root object, for backups and export.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return encodeSnapshot(s.data)
}

// persistLocked serializes the full root object and writes it to the
// backend. Callers must hold the write lock. On failure the in-memory
// state is already ahead of the durable state; the error is returned so
// the caller can surface the divergence instead of hiding it.
func (s *Store) persistLocked(ctx context.Context) error {
	data, err := encodeSnapshot(s.data)
	if err != nil {
		return err
	}
	if err := s.backend.Save(ctx, data); err != nil {
		s.logger.Error("snapshot write failed, in-memory state is ahead of durable state",
			"error", err, "bytes", len(data))
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// --- Posts ---

// GetPosts returns the posts collection.
func (s *Store) GetPosts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, len(s.data.Posts))
	copy(out, s.data.Posts)
	return out
}

// FindPostBySlug returns the first post with the given slug. Slugs are not
// enforced unique; when two posts share one, the first match wins.
func (s *Store) FindPostBySlug(slug string) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return model.Post{}, false
}

// SavePost replaces the post with a matching id in place, preserving its
// position, or appends when the id is unseen. Persists.
func (s *Store) SavePost(ctx context.Context, post model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.data.Posts {
		if s.data.Posts[i].ID == post.ID {
			s.data.Posts[i] = post
			replaced = true
			break
		}
	}
	if !replaced {
		s.data.Posts = append(s.data.Posts, post)
	}
	return s.persistLocked(ctx)
}

// DeletePost removes the post with the given id. Persists.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.data.Posts[:0]
	for _, p := range s.data.Posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.data.Posts = kept
	return s.persistLocked(ctx)
}

// --- Sections ---

// GetSections returns the sections collection.
func (s *Store) GetSections() []model.SiteSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SiteSection, len(s.data.Sections))
	copy(out, s.data.Sections)
	return out
}

// GetSection returns the section with the given id.
func (s *Store) GetSection(id string) (model.SiteSection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.data.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return model.SiteSection{}, false
}

// UpdateSection replaces the section with a matching id. When the id is
// unknown it returns ErrSectionNotFound without mutating or persisting
// anything.
func (s *Store) UpdateSection(ctx context.Context, section model.SiteSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Sections {
		if s.data.Sections[i].ID == section.ID {
			s.data.Sections[i] = section
			return s.persistLocked(ctx)
		}
	}
	return fmt.Errorf("%w: %s", ErrSectionNotFound, section.ID)
}

// --- Config ---

// GetConfig returns the site configuration.
func (s *Store) GetConfig() model.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Config
}

// UpdateConfig replaces the site configuration wholesale. Persists.
func (s *Store) UpdateConfig(ctx context.Context, cfg model.SiteConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Config = cfg
	return s.persistLocked(ctx)
}

// --- Inquiries ---

// GetInquiries returns the inquiries collection.
func (s *Store) GetInquiries() []model.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Inquiry, len(s.data.Inquiries))
	copy(out, s.data.Inquiries)
	return out
}

// AddInquiry stamps a fresh id and the current time onto the inquiry and
// appends it. Field values are stored exactly as given. Persists.
func (s *Store) AddInquiry(ctx context.Context, inq model.Inquiry) (model.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inq.ID = s.newID()
	inq.Date = s.now()
	s.data.Inquiries = append(s.data.Inquiries, inq)
	if err := s.persistLocked(ctx); err != nil {
		return inq, err
	}
	return inq, nil
}

// --- Assets ---

// GetAssets returns the assets collection, most recent first.
func (s *Store) GetAssets() []model.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Asset, len(s.data.Assets))
	copy(out, s.data.Assets)
	return out
}

// GetAsset returns the asset with the given id.
func (s *Store) GetAsset(id string) (model.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.data.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return model.Asset{}, false
}

// AddAsset prepends the asset, keeping most-recent-first order. Persists.
func (s *Store) AddAsset(ctx context.Context, asset model.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Assets = append([]model.Asset{asset}, s.data.Assets...)
	return s.persistLocked(ctx)
}

// DeleteAsset removes the asset with the given id. Persists.
func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.data.Assets[:0]
	for _, a := range s.data.Assets {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.data.Assets = kept
	return s.persistLocked(ctx)
}

// NewID returns a fresh opaque identifier.
func (s *Store) NewID() string {
	return s.newID()
}
