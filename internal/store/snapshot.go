// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"encoding/json"
	"fmt"

	"github.com/eduree/metaon/internal/model"
)

// root is the single unit of persistence: all five collections live inside
// one object serialized as one JSON blob.
type root struct {
	Posts     []model.Post        `json:"posts"`
	Sections  []model.SiteSection `json:"sections"`
	Config    model.SiteConfig    `json:"config"`
	Inquiries []model.Inquiry     `json:"inquiries"`
	Assets    []model.Asset       `json:"assets"`
}

// migration upgrades a raw snapshot from Version-1 to Version. Migrations
// run in sequence during decode, oldest first.
type migration struct {
	Version int
	Apply   func(raw map[string]json.RawMessage)
}

// migrations lists all snapshot migrations in order.
//
// v2: snapshots written before the asset library existed have no "assets"
// field (prior shape: posts/sections/config/inquiries only); default it to
// an empty list.
var migrations = []migration{
	{
		Version: 2,
		Apply: func(raw map[string]json.RawMessage) {
			if _, ok := raw["assets"]; !ok {
				raw["assets"] = json.RawMessage("[]")
			}
		},
	},
}

// snapshotVersion detects the schema version of a raw snapshot. The blob
// carries no explicit version field, so the shape decides.
func snapshotVersion(raw map[string]json.RawMessage) int {
	if _, ok := raw["assets"]; !ok {
		return 1
	}
	return 2
}

// decodeSnapshot parses a serialized snapshot, applying any pending
// migrations first.
func decodeSnapshot(data []byte) (*root, error) {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	version := snapshotVersion(raw)
	for _, m := range migrations {
		if version < m.Version {
			m.Apply(raw)
			version = m.Version
		}
	}

	migrated, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("re-encoding snapshot: %w", err)
	}

	r := &root{}
	if err := json.Unmarshal(migrated, r); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	r.normalize()
	return r, nil
}

// encodeSnapshot serializes the root object.
func encodeSnapshot(r *root) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// normalize replaces nil collections with empty ones so the serialized
// shape is stable regardless of how the root was built.
func (r *root) normalize() {
	if r.Posts == nil {
		r.Posts = []model.Post{}
	}
	if r.Sections == nil {
		r.Sections = []model.SiteSection{}
	}
	if r.Inquiries == nil {
		r.Inquiries = []model.Inquiry{}
	}
	if r.Assets == nil {
		r.Assets = []model.Asset{}
	}
}
