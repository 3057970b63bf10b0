// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/alexedwards/scs/v2"

	"github.com/eduree/metaon/internal/relay"
	"github.com/eduree/metaon/internal/render"
	"github.com/eduree/metaon/internal/service"
	"github.com/eduree/metaon/internal/store"
)

// testTemplateNames lists every page the handlers render. The test
// templates are minimal; layout and markup live in web/templates.
var testTemplateNames = map[string]string{
	"frontend/home.html":     "frontend",
	"frontend/about.html":    "frontend",
	"frontend/features.html": "frontend",
	"frontend/clients.html":  "frontend",
	"frontend/news.html":     "frontend",
	"frontend/post.html":     "frontend",
	"frontend/contact.html":  "frontend",
	"auth/login.html":        "auth",
	"admin/dashboard.html":   "admin",
	"admin/posts.html":       "admin",
	"admin/post_edit.html":   "admin",
	"admin/sections.html":    "admin",
	"admin/section_edit.html": "admin",
	"admin/inquiries.html":   "admin",
	"admin/assets.html":      "admin",
	"admin/settings.html":    "admin",
}

func testTemplatesFS() fstest.MapFS {
	fsys := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`{{define "base"}}<title>{{.Title}}</title>{{.Flash}} {{template "content" .}}{{end}}`),
		},
		"layouts/admin.html": &fstest.MapFile{
			Data: []byte(`{{define "admin-nav"}}nav{{end}}`),
		},
	}
	for name := range testTemplateNames {
		fsys[name] = &fstest.MapFile{
			Data: []byte(`{{define "content"}}page {{.Title}}{{end}}`),
		}
	}
	return fsys
}

type testEnv struct {
	store          *store.Store
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	logger         *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(store.NewMemoryBackend(), logger)
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("store load: %v", err)
	}

	sm := scs.New()
	renderer, err := render.New(render.Config{
		TemplatesFS:    testTemplatesFS(),
		SessionManager: sm,
	})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	return &testEnv{store: st, renderer: renderer, sessionManager: sm, logger: logger}
}

// frontend builds a FrontendHandler whose inquiry service posts to the
// given relay URL (empty for local-only).
func (e *testEnv) frontend(relayURL string) *FrontendHandler {
	var rc *relay.Client
	if relayURL != "" {
		rc = relay.New(relayURL)
	}
	inquiries := service.NewInquiries(e.store, rc, e.logger)
	return NewFrontendHandler(e.store, e.renderer, inquiries, nil, "http://localhost:8080", false)
}

// wrap applies the session middleware the routers add in production.
func (e *testEnv) wrap(h http.HandlerFunc) http.Handler {
	return e.sessionManager.LoadAndSave(h)
}
