// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/eduree/metaon/internal/logging"
	"github.com/eduree/metaon/internal/model"
	"github.com/eduree/metaon/internal/render"
	"github.com/eduree/metaon/internal/store"
)

// AdminHandler handles the admin console: dashboard, sections, inquiries,
// and site settings.
type AdminHandler struct {
	store          *store.Store
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	recent         *logging.RecentHandler
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(st *store.Store, renderer *render.Renderer, sm *scs.SessionManager, recent *logging.RecentHandler) *AdminHandler {
	return &AdminHandler{
		store:          st,
		renderer:       renderer,
		sessionManager: sm,
		recent:         recent,
	}
}

func (h *AdminHandler) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	td := render.TemplateData{
		Title:   title,
		Data:    data,
		Config:  h.store.GetConfig(),
		IsAdmin: true,
	}
	if err := h.renderer.Render(w, r, name, td); err != nil {
		logAndInternalError(w, "rendering admin page", "template", name, "error", err)
	}
}

// dashboardData is the payload for the admin dashboard template.
type dashboardData struct {
	PostCount    int
	DraftCount   int
	InquiryCount int
	AssetCount   int
	Events       []logging.Event
}

// Dashboard renders the admin overview with content counts and recent
// warning-level log events.
// GET /admin
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	posts := h.store.GetPosts()
	drafts := 0
	for _, p := range posts {
		if !p.IsPublished() {
			drafts++
		}
	}

	var events []logging.Event
	if h.recent != nil {
		events = h.recent.Recent()
		if len(events) > 10 {
			events = events[:10]
		}
	}

	h.render(w, r, "admin/dashboard", "Dashboard", dashboardData{
		PostCount:    len(posts),
		DraftCount:   drafts,
		InquiryCount: len(h.store.GetInquiries()),
		AssetCount:   len(h.store.GetAssets()),
		Events:       events,
	})
}

// Sections lists the fixed editable sections.
// GET /admin/sections
func (h *AdminHandler) Sections(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin/sections", "Sections", h.store.GetSections())
}

// SectionEdit renders the edit form for one section.
// GET /admin/sections/{id}
func (h *AdminHandler) SectionEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	section, ok := h.store.GetSection(id)
	if !ok {
		flashError(w, r, h.renderer, redirectAdminSections, "Section not found")
		return
	}
	h.render(w, r, "admin/section_edit", "Edit "+section.Name, section)
}

// SectionUpdate applies the edit form to a section. The section set is
// fixed; an unknown id is rejected without touching stored content.
// POST /admin/sections/{id}
func (h *AdminHandler) SectionUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminSections) {
		return
	}

	current, ok := h.store.GetSection(id)
	if !ok {
		flashError(w, r, h.renderer, redirectAdminSections, "Section not found")
		return
	}

	section := model.SiteSection{
		ID:   id,
		Name: current.Name,
		Title: model.BilingualText{
			EN: r.FormValue("title_en"),
			KR: r.FormValue("title_kr"),
		},
		Subtitle: model.BilingualText{
			EN: r.FormValue("subtitle_en"),
			KR: r.FormValue("subtitle_kr"),
		},
	}

	if contentEN, contentKR := r.FormValue("content_en"), r.FormValue("content_kr"); contentEN != "" || contentKR != "" {
		section.Content = &model.BilingualText{EN: contentEN, KR: contentKR}
	}
	if ctaLink := strings.TrimSpace(r.FormValue("cta_link")); ctaLink != "" {
		section.CTA = &model.CallToAction{
			Text: model.BilingualText{
				EN: r.FormValue("cta_text_en"),
				KR: r.FormValue("cta_text_kr"),
			},
			Link: ctaLink,
		}
	}

	if err := h.store.UpdateSection(r.Context(), section); err != nil {
		if errors.Is(err, store.ErrSectionNotFound) {
			flashError(w, r, h.renderer, redirectAdminSections, "Section not found")
			return
		}
		logAndInternalError(w, "updating section", "section", id, "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminSections, "Section updated")
}

// Inquiries lists received inquiries, newest first.
// GET /admin/inquiries
func (h *AdminHandler) Inquiries(w http.ResponseWriter, r *http.Request) {
	inquiries := h.store.GetInquiries()
	// Stored in arrival order; show newest first.
	for i, j := 0, len(inquiries)-1; i < j; i, j = i+1, j-1 {
		inquiries[i], inquiries[j] = inquiries[j], inquiries[i]
	}
	h.render(w, r, "admin/inquiries", "Inquiries", inquiries)
}

// Settings renders the site settings form.
// GET /admin/settings
func (h *AdminHandler) Settings(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin/settings", "Settings", h.store.GetConfig())
}

// hexColorRe matches a #rgb or #rrggbb accent color value.
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SettingsUpdate replaces the site configuration wholesale.
// POST /admin/settings
func (h *AdminHandler) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminSettings) {
		return
	}

	cfg := model.SiteConfig{
		AccentColor:  strings.TrimSpace(r.FormValue("accent_color")),
		SiteName:     strings.TrimSpace(r.FormValue("site_name")),
		ContactEmail: strings.TrimSpace(r.FormValue("contact_email")),
	}

	if cfg.SiteName == "" {
		flashError(w, r, h.renderer, redirectAdminSettings, "Site name is required")
		return
	}
	if cfg.AccentColor != "" && !hexColorRe.MatchString(cfg.AccentColor) {
		flashError(w, r, h.renderer, redirectAdminSettings, "Accent color must be a hex value like #7C3AED")
		return
	}

	if err := h.store.UpdateConfig(r.Context(), cfg); err != nil {
		logAndInternalError(w, "updating site config", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminSettings, "Settings saved")
}
