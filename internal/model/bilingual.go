// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model contains domain models for the MetaOn site and CMS.
package model

// Language codes used across the site. Every piece of marketing copy is
// stored as an English/Korean pair and the two lines are always shown
// together; the preferred language only decides which line comes first.
const (
	LangEN = "en"
	LangKR = "kr"
)

// BilingualText is an English/Korean string pair. Both fields are always
// present in stored content; emptiness is not enforced.
type BilingualText struct {
	EN string `json:"en"`
	KR string `json:"kr"`
}

// In returns the string for the given language code, falling back to
// English for unknown codes.
func (b BilingualText) In(lang string) string {
	if lang == LangKR {
		return b.KR
	}
	return b.EN
}

// Other returns the string for the language opposite to the given code.
func (b BilingualText) Other(lang string) string {
	if lang == LangKR {
		return b.EN
	}
	return b.KR
}

// IsEmpty reports whether both halves of the pair are empty.
func (b BilingualText) IsEmpty() bool {
	return b.EN == "" && b.KR == ""
}
