// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eduree/metaon/internal/model"
	"github.com/eduree/metaon/internal/util"
)

// publishDateLayout is the date input format used by the post editor.
const publishDateLayout = "2006-01-02"

// Posts lists all posts for the admin console, newest first with drafts
// included.
// GET /admin/posts
func (h *AdminHandler) Posts(w http.ResponseWriter, r *http.Request) {
	posts := h.store.GetPosts()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishDate.After(posts[j].PublishDate)
	})
	h.render(w, r, "admin/posts", "Posts", posts)
}

// postFormData is the payload for the post editor template.
type postFormData struct {
	Post   model.Post
	Assets []model.Asset
	IsNew  bool
}

// PostNew renders an empty post editor.
// GET /admin/posts/new
func (h *AdminHandler) PostNew(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin/post_edit", "New Post", postFormData{
		Post:   model.Post{PublishDate: time.Now()},
		Assets: h.store.GetAssets(),
		IsNew:  true,
	})
}

// PostEdit renders the editor for an existing post.
// GET /admin/posts/{id}
func (h *AdminHandler) PostEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, ok := h.findPost(id)
	if !ok {
		flashError(w, r, h.renderer, redirectAdminPosts, "Post not found")
		return
	}
	h.render(w, r, "admin/post_edit", "Edit Post", postFormData{
		Post:   post,
		Assets: h.store.GetAssets(),
	})
}

// PostSave creates or updates a post from the editor form. An English
// title is required; a missing slug is generated from it.
// POST /admin/posts and POST /admin/posts/{id}
func (h *AdminHandler) PostSave(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminPosts) {
		return
	}

	id := chi.URLParam(r, "id")
	var post model.Post
	if id != "" {
		existing, ok := h.findPost(id)
		if !ok {
			flashError(w, r, h.renderer, redirectAdminPosts, "Post not found")
			return
		}
		post = existing
	} else {
		post.ID = h.store.NewID()
	}

	post.Title = model.BilingualText{
		EN: strings.TrimSpace(r.FormValue("title_en")),
		KR: strings.TrimSpace(r.FormValue("title_kr")),
	}
	post.Summary = model.BilingualText{
		EN: r.FormValue("summary_en"),
		KR: r.FormValue("summary_kr"),
	}
	post.Content = model.BilingualText{
		EN: r.FormValue("content_en"),
		KR: r.FormValue("content_kr"),
	}
	post.CoverImage = strings.TrimSpace(r.FormValue("cover_image"))
	post.Published = r.FormValue("published") == "on"
	post.SEO = model.SEOMeta{
		Title:       strings.TrimSpace(r.FormValue("seo_title")),
		Description: strings.TrimSpace(r.FormValue("seo_description")),
	}

	if post.Title.EN == "" {
		flashError(w, r, h.renderer, redirectAdminPosts, "An English title is required")
		return
	}

	post.Slug = strings.TrimSpace(r.FormValue("slug"))
	if post.Slug == "" {
		post.Slug = util.Slugify(post.Title.EN)
	}
	if !util.IsValidSlug(post.Slug) {
		flashError(w, r, h.renderer, redirectAdminPosts, "Slug may only contain lowercase letters, digits, and hyphens")
		return
	}

	post.Tags = parseTags(r.FormValue("tags"))

	if dateStr := r.FormValue("publish_date"); dateStr != "" {
		date, err := time.Parse(publishDateLayout, dateStr)
		if err != nil {
			flashError(w, r, h.renderer, redirectAdminPosts, "Publish date must be YYYY-MM-DD")
			return
		}
		post.PublishDate = date
	} else if post.PublishDate.IsZero() {
		post.PublishDate = time.Now()
	}

	if err := h.store.SavePost(r.Context(), post); err != nil {
		logAndInternalError(w, "saving post", "post_id", post.ID, "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminPosts, "Post saved")
}

// PostDelete removes a post.
// POST /admin/posts/{id}/delete
func (h *AdminHandler) PostDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.findPost(id); !ok {
		flashError(w, r, h.renderer, redirectAdminPosts, "Post not found")
		return
	}

	if err := h.store.DeletePost(r.Context(), id); err != nil {
		logAndInternalError(w, "deleting post", "post_id", id, "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminPosts, "Post deleted")
}

func (h *AdminHandler) findPost(id string) (model.Post, bool) {
	for _, p := range h.store.GetPosts() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

// parseTags splits a comma-separated tag list, dropping empties.
func parseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
