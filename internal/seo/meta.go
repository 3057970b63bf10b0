// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"time"
)

// Meta holds all SEO meta tag data for a page.
type Meta struct {
	Title         string // Page title (for <title> tag)
	Description   string // Meta description
	Canonical     string // Canonical URL
	OGTitle       string // Open Graph title
	OGDescription string // Open Graph description
	OGImage       string // Open Graph image URL (absolute)
	OGType        string // Open Graph type (website, article)
	OGSiteName    string // Open Graph site name
	OGURL         string // Open Graph URL
	Robots        string // Robots directive
}

// PageData contains page information for building meta tags.
type PageData struct {
	Title           string
	Body            string
	Path            string // URL path including leading slash
	MetaTitle       string
	MetaDescription string
	CoverImage      string
	PublishedAt     time.Time
	NoIndex         bool
}

// SiteData contains site-wide settings for SEO.
type SiteData struct {
	SiteName        string
	SiteURL         string
	SiteDescription string
	DefaultOGImage  string
}

// BuildMeta creates a Meta struct from page and site data with fallbacks:
// explicit meta title/description win, then the page title and a body
// excerpt, then the site-wide defaults.
func BuildMeta(page *PageData, site *SiteData) *Meta {
	meta := &Meta{
		OGType:     "website",
		OGSiteName: site.SiteName,
		Robots:     "index,follow",
	}

	if page == nil {
		meta.Title = site.SiteName
		meta.OGTitle = site.SiteName
		meta.Description = site.SiteDescription
		meta.OGDescription = site.SiteDescription
		meta.Canonical = site.SiteURL
		meta.OGURL = site.SiteURL
		if site.DefaultOGImage != "" {
			meta.OGImage = makeAbsoluteURL(site.DefaultOGImage, site.SiteURL)
		}
		return meta
	}

	meta.OGType = "article"

	if page.MetaTitle != "" {
		meta.Title = page.MetaTitle
	} else {
		meta.Title = page.Title
	}
	meta.OGTitle = meta.Title

	if page.MetaDescription != "" {
		meta.Description = page.MetaDescription
	} else if page.Body != "" {
		meta.Description = truncateText(stripHTML(page.Body), 160)
	} else {
		meta.Description = site.SiteDescription
	}
	meta.OGDescription = meta.Description

	if page.CoverImage != "" {
		meta.OGImage = makeAbsoluteURL(page.CoverImage, site.SiteURL)
	} else if site.DefaultOGImage != "" {
		meta.OGImage = makeAbsoluteURL(site.DefaultOGImage, site.SiteURL)
	}

	meta.Canonical = strings.TrimSuffix(site.SiteURL, "/") + page.Path
	meta.OGURL = meta.Canonical

	if page.NoIndex {
		meta.Robots = "noindex,nofollow"
	}

	return meta
}

// stripHTML removes HTML tags from a string.
func stripHTML(html string) string {
	var result strings.Builder
	inTag := false
	for _, r := range html {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			result.WriteRune(' ')
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

// truncateText truncates text to maxLen characters at a word boundary.
func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLen {
		return text
	}

	truncated := text[:maxLen]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimSpace(truncated) + "..."
}

// makeAbsoluteURL ensures a URL is absolute by prepending the site URL if
// needed. Data URLs pass through unchanged.
func makeAbsoluteURL(url, siteURL string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "data:") {
		return url
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return siteURL + url
}
