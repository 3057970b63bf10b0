// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Section identifiers. The section set is fixed at seed time; sections are
// edited in place and never created or deleted at runtime.
const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionFeatures = "features"
)

// SectionIDs returns all valid section identifiers.
func SectionIDs() []string {
	return []string{SectionHero, SectionAbout, SectionFeatures}
}

// IsValidSectionID checks if an id names one of the fixed sections.
func IsValidSectionID(id string) bool {
	for _, s := range SectionIDs() {
		if s == id {
			return true
		}
	}
	return false
}

// CallToAction is an optional button attached to a section.
type CallToAction struct {
	Text BilingualText `json:"text"`
	Link string        `json:"link"`
}

// SiteSection is a fixed, named block of editable bilingual marketing copy
// bound to a specific page region.
type SiteSection struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Title    BilingualText  `json:"title"`
	Subtitle BilingualText  `json:"subtitle"`
	Content  *BilingualText `json:"content,omitempty"`
	CTA      *CallToAction  `json:"cta,omitempty"`
}
