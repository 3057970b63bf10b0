// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic background jobs, currently timestamped
// snapshot backups of the content store.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/eduree/metaon/internal/store"
)

// maxBackups is the number of snapshot files kept on disk.
const maxBackups = 14

// Scheduler handles scheduled background tasks.
type Scheduler struct {
	store     *store.Store
	cron      *cron.Cron
	logger    *slog.Logger
	backupDir string
	now       func() time.Time
}

// New creates a new scheduler instance writing backups under backupDir.
func New(st *store.Store, backupDir string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:     st,
		cron:      cron.New(),
		logger:    logger,
		backupDir: backupDir,
		now:       time.Now,
	}
}

// Start registers the backup job on the given cron schedule and begins
// the scheduler.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.RunBackup(context.Background()); err != nil {
			s.logger.Error("snapshot backup failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("registering backup job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()), "schedule", schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// RunBackup writes the current content snapshot to a timestamped file and
// prunes old backups beyond maxBackups.
func (s *Scheduler) RunBackup(ctx context.Context) error {
	data, err := s.store.Snapshot()
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return fmt.Errorf("creating backup directory: %w", err)
	}

	name := fmt.Sprintf("snapshot-%s.json", s.now().UTC().Format("20060102-150405"))
	path := filepath.Join(s.backupDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing backup %s: %w", name, err)
	}

	s.logger.Info("snapshot backup written", "file", name, "bytes", len(data))

	if err := s.pruneOldBackups(); err != nil {
		s.logger.Warn("pruning old backups failed", "error", err)
	}
	return nil
}

// pruneOldBackups removes the oldest backup files beyond maxBackups.
// Filenames embed a UTC timestamp, so lexical order is chronological.
func (s *Scheduler) pruneOldBackups() error {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return err
	}

	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "snapshot-") && strings.HasSuffix(e.Name(), ".json") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= maxBackups {
		return nil
	}

	sort.Strings(backups)
	for _, name := range backups[:len(backups)-maxBackups] {
		if err := os.Remove(filepath.Join(s.backupDir, name)); err != nil {
			return err
		}
		s.logger.Info("pruned old backup", "file", name)
	}
	return nil
}
