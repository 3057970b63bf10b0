package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/eduree/metaon/internal/store"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAssetService(t *testing.T) (*Assets, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), silentLogger())
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return NewAssets(st, silentLogger()), st
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadRejectsOversizedFileBeforeCreatingAsset(t *testing.T) {
	svc, st := newAssetService(t)

	big := int64(MaxUploadSize + 1)
	_, err := svc.Upload(context.Background(), "big.bin", "application/octet-stream",
		strings.NewReader("irrelevant"), big)
	if err != ErrFileTooLarge {
		t.Fatalf("Upload() error = %v, want ErrFileTooLarge", err)
	}
	if got := len(st.GetAssets()); got != 0 {
		t.Errorf("asset collection length = %d, want unchanged 0", got)
	}
}

func TestUploadRejectsUnderdeclaredSize(t *testing.T) {
	svc, st := newAssetService(t)

	// Declared size lies; the actual stream is over the limit.
	data := bytes.Repeat([]byte("x"), MaxUploadSize+10)
	_, err := svc.Upload(context.Background(), "sneaky.bin", "application/octet-stream",
		bytes.NewReader(data), 100)
	if err != ErrFileTooLarge {
		t.Fatalf("Upload() error = %v, want ErrFileTooLarge", err)
	}
	if got := len(st.GetAssets()); got != 0 {
		t.Errorf("asset collection length = %d, want 0", got)
	}
}

func TestUploadStoresDataURL(t *testing.T) {
	svc, st := newAssetService(t)

	content := []byte("hello world")
	asset, err := svc.Upload(context.Background(), "note.txt", "text/plain",
		bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if asset.ID == "" {
		t.Error("asset has no id")
	}
	if asset.Date.IsZero() {
		t.Error("asset has no upload timestamp")
	}
	if !strings.HasPrefix(asset.URL, "data:text/plain;base64,") {
		t.Errorf("asset URL = %q, want a data URL", asset.URL)
	}
	if asset.Thumbnail != "" {
		t.Error("non-image asset got a thumbnail")
	}

	assets := st.GetAssets()
	if len(assets) != 1 || assets[0].ID != asset.ID {
		t.Errorf("store assets = %v, want the uploaded asset first", assets)
	}
}

func TestUploadImageGetsThumbnail(t *testing.T) {
	svc, _ := newAssetService(t)

	data := pngBytes(t, 800, 600)
	asset, err := svc.Upload(context.Background(), "cover.png", "image/png",
		bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if !strings.HasPrefix(asset.Thumbnail, "data:image/jpeg;base64,") {
		t.Errorf("thumbnail = %q, want a jpeg data URL", asset.Thumbnail[:min(len(asset.Thumbnail), 40)])
	}
}

func TestUploadCorruptImageStillStored(t *testing.T) {
	svc, st := newAssetService(t)

	data := []byte("not actually a png")
	asset, err := svc.Upload(context.Background(), "broken.png", "image/png",
		bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if asset.Thumbnail != "" {
		t.Error("corrupt image got a thumbnail")
	}
	if len(st.GetAssets()) != 1 {
		t.Error("corrupt image was not stored")
	}
}

func TestDeleteAsset(t *testing.T) {
	svc, st := newAssetService(t)

	content := []byte("x")
	asset, err := svc.Upload(context.Background(), "a.txt", "text/plain",
		bytes.NewReader(content), 1)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if err := svc.Delete(context.Background(), asset.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(st.GetAssets()) != 0 {
		t.Error("asset survived deletion")
	}
}
