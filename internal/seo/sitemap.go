// Package seo builds meta tags, sitemap XML, and robots.txt content.
package seo

import (
	"encoding/xml"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapPost contains data needed to add a published post to the sitemap.
type SitemapPost struct {
	Slug        string
	PublishDate time.Time
}

// SitemapBuilder builds sitemap XML for the site.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: siteURL,
		urls:    make([]SitemapURL, 0),
	}
}

// AddHomepage adds the homepage to the sitemap.
func (b *SitemapBuilder) AddHomepage() {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL,
		ChangeFreq: ChangeFreqDaily,
		Priority:   "1.0",
	})
}

// AddStaticPage adds a fixed page such as /about or /contact.
func (b *SitemapBuilder) AddStaticPage(path string) {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + path,
		ChangeFreq: ChangeFreqMonthly,
		Priority:   "0.7",
	})
}

// AddPost adds a published post to the sitemap.
func (b *SitemapBuilder) AddPost(post SitemapPost) {
	url := SitemapURL{
		Loc:        b.siteURL + "/post/" + post.Slug,
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "0.8",
	}
	if !post.PublishDate.IsZero() {
		url.LastMod = post.PublishDate.Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// AddPosts adds multiple posts to the sitemap.
func (b *SitemapBuilder) AddPosts(posts []SitemapPost) {
	for _, p := range posts {
		b.AddPost(p)
	}
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}
