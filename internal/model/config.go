// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// SiteConfig is the singleton site configuration record. It is replaced
// wholesale on update.
type SiteConfig struct {
	AccentColor  string `json:"accentColor"`
	SiteName     string `json:"siteName"`
	ContactEmail string `json:"contactEmail"`
}
