// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers for the public site, the
// admin console, and the chat API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/eduree/metaon/internal/geoip"
	"github.com/eduree/metaon/internal/i18n"
	"github.com/eduree/metaon/internal/model"
	"github.com/eduree/metaon/internal/render"
	"github.com/eduree/metaon/internal/seo"
	"github.com/eduree/metaon/internal/service"
	"github.com/eduree/metaon/internal/store"
)

// FrontendHandler serves the public marketing pages.
type FrontendHandler struct {
	store     *store.Store
	renderer  *render.Renderer
	inquiries *service.Inquiries
	geo       *geoip.Lookup
	siteURL   string
	isDev     bool
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(st *store.Store, renderer *render.Renderer, inquiries *service.Inquiries, geo *geoip.Lookup, siteURL string, isDev bool) *FrontendHandler {
	return &FrontendHandler{
		store:     st,
		renderer:  renderer,
		inquiries: inquiries,
		geo:       geo,
		siteURL:   siteURL,
		isDev:     isDev,
	}
}

// baseData assembles the template data shared by every public page,
// including default meta tags with a canonical URL for the request path.
func (h *FrontendHandler) baseData(r *http.Request, title string, data any) render.TemplateData {
	cfg := h.store.GetConfig()

	meta := seo.BuildMeta(nil, h.siteData(cfg))
	if r.URL.Path != RouteRoot {
		meta.Canonical = strings.TrimSuffix(h.siteURL, "/") + r.URL.Path
		meta.OGURL = meta.Canonical
	}

	return render.TemplateData{
		Title:  title,
		Data:   data,
		Lang:   i18n.Preferred(r),
		Config: cfg,
		Meta:   meta,
	}
}

// siteData maps the stored site configuration onto the SEO site fields.
// The hero subtitle doubles as the site-wide description.
func (h *FrontendHandler) siteData(cfg model.SiteConfig) *seo.SiteData {
	var description string
	if hero, ok := h.store.GetSection(model.SectionHero); ok {
		description = hero.Subtitle.EN
	}
	return &seo.SiteData{
		SiteName:        cfg.SiteName,
		SiteURL:         h.siteURL,
		SiteDescription: description,
	}
}

// homeData is the payload for the home page template.
type homeData struct {
	Hero     model.SiteSection
	About    model.SiteSection
	Features model.SiteSection
	Posts    []model.Post
	Country  string
	Roles    []string
}

// inquiryRoles are the role choices offered on the home-page form.
var inquiryRoles = []string{"Teacher", "Director", "Parent", "Distributor", "Other"}

// Home renders the landing page: hero, about, and features sections plus
// the three most recent published posts and the inquiry form.
// GET /
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	hero, _ := h.store.GetSection(model.SectionHero)
	about, _ := h.store.GetSection(model.SectionAbout)
	features, _ := h.store.GetSection(model.SectionFeatures)

	posts := h.publishedPosts()
	if len(posts) > 3 {
		posts = posts[:3]
	}

	data := homeData{
		Hero:     hero,
		About:    about,
		Features: features,
		Posts:    posts,
		Country:  h.countryFor(r),
		Roles:    inquiryRoles,
	}

	cfg := h.store.GetConfig()
	if err := h.renderer.Render(w, r, "frontend/home", h.baseData(r, cfg.SiteName, data)); err != nil {
		logAndInternalError(w, "rendering home page", "error", err)
	}
}

// SubmitInquiry handles the home-page inquiry form. The inquiry goes to
// the external relay first and is recorded locally only when the relay
// accepts it.
// POST /
func (h *FrontendHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	h.handleInquiry(w, r, redirectHome, h.inquiries.SubmitViaRelay)
}

// Contact renders the contact page with its own inquiry form.
// GET /contact
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Country string
		Roles   []string
	}{
		Country: h.countryFor(r),
		Roles:   inquiryRoles,
	}
	if err := h.renderer.Render(w, r, "frontend/contact", h.baseData(r, "Contact", data)); err != nil {
		logAndInternalError(w, "rendering contact page", "error", err)
	}
}

// SubmitContact handles the contact-page form. Contact inquiries are
// recorded locally only and never touch the relay.
// POST /contact
func (h *FrontendHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.handleInquiry(w, r, redirectContact, h.inquiries.SubmitLocal)
}

// handleInquiry parses the shared inquiry form fields and submits them
// through the given path.
func (h *FrontendHandler) handleInquiry(w http.ResponseWriter, r *http.Request, redirectURL string, submit func(ctx context.Context, inq model.Inquiry) (model.Inquiry, error)) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectURL) {
		return
	}

	inq := model.Inquiry{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Company: strings.TrimSpace(r.FormValue("company")),
		Role:    strings.TrimSpace(r.FormValue("role")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Country: strings.TrimSpace(r.FormValue("country")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}
	if inq.Name == "" || inq.Email == "" || inq.Message == "" {
		flashError(w, r, h.renderer, redirectURL, "Please fill in your name, email, and message.")
		return
	}

	if _, err := submit(r.Context(), inq); err != nil {
		if errors.Is(err, service.ErrRelayFailed) {
			flashError(w, r, h.renderer, redirectURL, "We could not deliver your inquiry. Please try again in a moment.")
			return
		}
		logAndInternalError(w, "recording inquiry", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectURL, "Thank you! Your inquiry has been received.")
}

// NotFound redirects unknown public paths to the home page instead of
// serving a 404, matching the single-page origins of the site.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, redirectHome, http.StatusFound)
}

// About renders the about page.
// GET /about
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	section, _ := h.store.GetSection(model.SectionAbout)
	if err := h.renderer.Render(w, r, "frontend/about", h.baseData(r, "About", section)); err != nil {
		logAndInternalError(w, "rendering about page", "error", err)
	}
}

// Features renders the features page.
// GET /features
func (h *FrontendHandler) Features(w http.ResponseWriter, r *http.Request) {
	section, _ := h.store.GetSection(model.SectionFeatures)
	if err := h.renderer.Render(w, r, "frontend/features", h.baseData(r, "Features", section)); err != nil {
		logAndInternalError(w, "rendering features page", "error", err)
	}
}

// Clients renders the clients page.
// GET /clients
func (h *FrontendHandler) Clients(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "frontend/clients", h.baseData(r, "Clients", nil)); err != nil {
		logAndInternalError(w, "rendering clients page", "error", err)
	}
}

// News renders the published post listing, newest first.
// GET /news
func (h *FrontendHandler) News(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "frontend/news", h.baseData(r, "News", h.publishedPosts())); err != nil {
		logAndInternalError(w, "rendering news page", "error", err)
	}
}

// Post renders a single published post by slug. Unknown or unpublished
// slugs redirect to the home page.
// GET /post/{slug}
func (h *FrontendHandler) Post(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, ok := h.store.FindPostBySlug(slug)
	if !ok || !post.IsPublished() {
		http.Redirect(w, r, redirectHome, http.StatusFound)
		return
	}

	td := h.baseData(r, post.MetaTitle(), post)
	td.Meta = seo.BuildMeta(&seo.PageData{
		Title:           post.Title.EN,
		Body:            post.Content.EN,
		Path:            "/post/" + post.Slug,
		MetaTitle:       post.SEO.Title,
		MetaDescription: post.SEO.Description,
		CoverImage:      post.CoverImage,
		PublishedAt:     post.PublishDate,
	}, h.siteData(h.store.GetConfig()))

	if err := h.renderer.Render(w, r, "frontend/post", td); err != nil {
		logAndInternalError(w, "rendering post page", "error", err, "slug", slug)
	}
}

// SetLanguage stores the visitor's language preference and returns to the
// referring page.
// POST /language
func (h *FrontendHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, redirectHome, http.StatusSeeOther)
		return
	}
	i18n.SetPreference(w, r.FormValue("lang"))

	ref := r.Header.Get("Referer")
	if ref == "" || !strings.HasPrefix(ref, h.siteURL) {
		ref = redirectHome
	}
	http.Redirect(w, r, ref, http.StatusSeeOther)
}

// Sitemap serves the sitemap.xml document.
// GET /sitemap.xml
func (h *FrontendHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	b := seo.NewSitemapBuilder(h.siteURL)
	b.AddHomepage()
	for _, path := range []string{RouteAbout, RouteFeatures, RouteClients, RouteNews, RouteContact} {
		b.AddStaticPage(path)
	}
	for _, p := range h.publishedPosts() {
		b.AddPost(seo.SitemapPost{Slug: p.Slug, PublishDate: p.PublishDate})
	}

	out, err := b.Build()
	if err != nil {
		logAndInternalError(w, "building sitemap", "error", err)
		return
	}
	w.Header().Set(HeaderContentType, "application/xml; charset=utf-8")
	w.Write(out)
}

// Robots serves robots.txt. Development instances block all crawlers.
// GET /robots.txt
func (h *FrontendHandler) Robots(w http.ResponseWriter, r *http.Request) {
	out := seo.NewRobotsBuilder(seo.RobotsConfig{
		SiteURL:     h.siteURL,
		DisallowAll: h.isDev,
	}).Build()
	w.Header().Set(HeaderContentType, "text/plain; charset=utf-8")
	w.Write([]byte(out))
}

// publishedPosts returns published posts sorted by publish date, newest
// first.
func (h *FrontendHandler) publishedPosts() []model.Post {
	var posts []model.Post
	for _, p := range h.store.GetPosts() {
		if p.IsPublished() {
			posts = append(posts, p)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishDate.After(posts[j].PublishDate)
	})
	return posts
}

// countryFor resolves the client's country code for form prefill, or ""
// when GeoIP is disabled.
func (h *FrontendHandler) countryFor(r *http.Request) string {
	if h.geo == nil {
		return ""
	}
	return h.geo.CountryCode(r.RemoteAddr)
}
