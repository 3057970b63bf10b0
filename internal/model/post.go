// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// SEOMeta holds the per-post search engine metadata.
type SEOMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Post represents a news post. The JSON field names match the persisted
// snapshot layout and must not change without a snapshot migration.
type Post struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Title       BilingualText `json:"title"`
	Summary     BilingualText `json:"summary"`
	Content     BilingualText `json:"content"`
	CoverImage  string        `json:"coverImage"`
	Tags        []string      `json:"tags"`
	PublishDate time.Time     `json:"publishDate"`
	Published   bool          `json:"published"`
	SEO         SEOMeta       `json:"seo"`
}

// IsPublished reports whether the post is visible on the public site.
func (p *Post) IsPublished() bool {
	return p.Published
}

// MetaTitle returns the SEO title, falling back to the English title.
func (p *Post) MetaTitle() string {
	if p.SEO.Title != "" {
		return p.SEO.Title
	}
	return p.Title.EN
}

// MetaDescription returns the SEO description, falling back to the
// English summary.
func (p *Post) MetaDescription() string {
	if p.SEO.Description != "" {
		return p.SEO.Description
	}
	return p.Summary.EN
}
