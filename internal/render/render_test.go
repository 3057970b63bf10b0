// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func testTemplatesFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`{{define "base"}}<html><body>{{template "content" .}}{{end}}`),
		},
		"layouts/admin.html": &fstest.MapFile{
			Data: []byte(`{{define "admin-nav"}}<nav>admin</nav>{{end}}`),
		},
		"partials/greeting.html": &fstest.MapFile{
			Data: []byte(`{{define "greeting"}}hello{{end}}`),
		},
		"frontend/home.html": &fstest.MapFile{
			Data: []byte(`{{define "content"}}{{template "greeting" .}} {{.Title}} {{.Lang}}{{end}}`),
		},
		"admin/dashboard.html": &fstest.MapFile{
			Data: []byte(`{{define "content"}}{{template "admin-nav" .}}{{.Flash}}{{end}}`),
		},
		"auth/login.html": &fstest.MapFile{
			Data: []byte(`{{define "content"}}login{{end}}`),
		},
	}
}

func TestRenderKnownTemplate(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := r.Render(w, req, "frontend/home", TemplateData{Title: "MetaOn"}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := w.Body.String()
	if !strings.Contains(body, "hello MetaOn en") {
		t.Errorf("body = %q, want partial, title, and default lang", body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := r.Render(w, req, "frontend/missing", TemplateData{}); err == nil {
		t.Fatal("Render() accepted unknown template name")
	}
}

func TestTemplateGroupsParsed(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, name := range []string{"frontend/home", "admin/dashboard", "auth/login"} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	got := string(renderMarkdown("# Title\n\n<script>alert(1)</script>\n\n**bold**"))

	if !strings.Contains(got, "<h1>") {
		t.Errorf("markdown heading not rendered: %q", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("markdown bold not rendered: %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("script tag survived sanitization: %q", got)
	}
}

func TestTemplateFuncs(t *testing.T) {
	funcs := (&Renderer{}).templateFuncs()

	formatDate := funcs["formatDate"].(func(time.Time) string)
	testTime := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := formatDate(testTime); got != "Mar 15, 2025" {
		t.Errorf("formatDate() = %q, want %q", got, "Mar 15, 2025")
	}

	truncate := funcs["truncate"].(func(string, int) string)
	if got := truncate("hello world", 5); got != "hello..." {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("hi", 5); got != "hi" {
		t.Errorf("truncate() short = %q", got)
	}

	safe := funcs["safe"].(func(string) template.HTML)
	if got := safe("<b>x</b>"); got != template.HTML("<b>x</b>") {
		t.Errorf("safe() = %q", got)
	}

	joinTags := funcs["joinTags"].(func([]string) string)
	if got := joinTags([]string{"Announcement", "AI"}); got != "Announcement, AI" {
		t.Errorf("joinTags() = %q", got)
	}
}
