// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eduree/metaon/internal/service"
)

// AssetsHandler handles admin asset uploads and deletion.
type AssetsHandler struct {
	*AdminHandler
	assets *service.Assets
}

// NewAssetsHandler creates a new AssetsHandler sharing the admin handler's
// rendering plumbing.
func NewAssetsHandler(admin *AdminHandler, assets *service.Assets) *AssetsHandler {
	return &AssetsHandler{AdminHandler: admin, assets: assets}
}

// List shows the asset library, most recent first.
// GET /admin/assets
func (h *AssetsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin/assets", "Assets", h.store.GetAssets())
}

// Upload stores one uploaded file as a data-URL asset.
// POST /admin/assets/upload
func (h *AssetsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		flashError(w, r, h.renderer, redirectAdminAssets, "Upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminAssets, "Choose a file to upload")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get(HeaderContentType)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	asset, err := h.assets.Upload(r.Context(), header.Filename, mimeType, file, header.Size)
	if err != nil {
		if errors.Is(err, service.ErrFileTooLarge) {
			flashError(w, r, h.renderer, redirectAdminAssets, "File exceeds the 2 MB upload limit")
			return
		}
		logAndInternalError(w, "uploading asset", "name", header.Filename, "error", err)
		return
	}

	slog.Info("asset uploaded", "asset_id", asset.ID, "name", asset.Name, "type", asset.Type)
	flashSuccess(w, r, h.renderer, redirectAdminAssets, "Uploaded "+asset.Name)
}

// Delete removes an asset. Posts that copied its data URL keep their copy.
// POST /admin/assets/{id}/delete
func (h *AssetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.store.GetAsset(id); !ok {
		flashError(w, r, h.renderer, redirectAdminAssets, "Asset not found")
		return
	}

	if err := h.assets.Delete(r.Context(), id); err != nil {
		logAndInternalError(w, "deleting asset", "asset_id", id, "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminAssets, "Asset deleted")
}
