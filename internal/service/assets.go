// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the application services between the HTTP
// handlers and the content store.
package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/eduree/metaon/internal/model"
	"github.com/eduree/metaon/internal/store"
)

// MaxUploadSize is the per-file upload limit. Uploads land in the content
// snapshot as base64, so this bounds snapshot growth per asset.
const MaxUploadSize = 2 << 20 // 2 MB

// ThumbnailWidth is the pixel width of generated asset thumbnails.
const ThumbnailWidth = 320

// ErrFileTooLarge is returned before any Asset record is created when the
// uploaded file exceeds MaxUploadSize.
var ErrFileTooLarge = fmt.Errorf("file exceeds the %d MB upload limit", MaxUploadSize>>20)

// Assets turns uploaded files into stored Asset records.
type Assets struct {
	store  *store.Store
	logger *slog.Logger
}

// NewAssets creates the asset service.
func NewAssets(st *store.Store, logger *slog.Logger) *Assets {
	return &Assets{store: st, logger: logger}
}

// Upload validates and stores one uploaded file. The file content becomes
// a base64 data URL; image uploads also get a downscaled thumbnail.
// Returns the stored asset.
func (s *Assets) Upload(ctx context.Context, name, mimeType string, r io.Reader, size int64) (model.Asset, error) {
	if size > MaxUploadSize {
		return model.Asset{}, ErrFileTooLarge
	}

	// The declared size is client-supplied; enforce the limit on the
	// actual bytes as well.
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return model.Asset{}, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > MaxUploadSize {
		return model.Asset{}, ErrFileTooLarge
	}

	asset := model.Asset{
		ID:   uuid.NewString(),
		Name: name,
		URL:  dataURL(mimeType, data),
		Type: mimeType,
		Date: time.Now(),
	}

	if strings.HasPrefix(mimeType, "image/") {
		thumb, err := makeThumbnail(data)
		if err != nil {
			// A failed thumbnail never blocks the upload.
			s.logger.Warn("thumbnail generation failed", "asset", name, "error", err)
		} else {
			asset.Thumbnail = thumb
		}
	}

	if err := s.store.AddAsset(ctx, asset); err != nil {
		return asset, err
	}
	return asset, nil
}

// Delete removes an asset by id. Posts that copied the asset's data URL
// keep their copy.
func (s *Assets) Delete(ctx context.Context, id string) error {
	return s.store.DeleteAsset(ctx, id)
}

// dataURL builds a data URL from raw bytes.
func dataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// makeThumbnail decodes an image and re-encodes a width-bounded JPEG
// thumbnail as a data URL.
func makeThumbnail(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	if img.Bounds().Dx() > ThumbnailWidth {
		img = imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("encoding thumbnail: %w", err)
	}
	return dataURL("image/jpeg", buf.Bytes()), nil
}
