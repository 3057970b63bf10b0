// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"
	"time"
)

// Asset is a locally uploaded file retained as a base64 data URL rather
// than a separate binary store. Posts that use an asset copy its URL; the
// asset can be deleted without breaking the post's stored copy.
type Asset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

// IsImage reports whether the asset holds image data.
func (a *Asset) IsImage() bool {
	return strings.HasPrefix(a.Type, "image/")
}

// PreviewURL returns the thumbnail when one exists, otherwise the full
// data URL.
func (a *Asset) PreviewURL() string {
	if a.Thumbnail != "" {
		return a.Thumbnail
	}
	return a.URL
}
