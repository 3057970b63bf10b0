package store

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduree/metaon/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func newTestStore(t *testing.T) (*Store, *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	s := New(backend, testLogger())
	require.NoError(t, s.Load(context.Background()))
	return s, backend
}

func TestLoadSeedsDefaults(t *testing.T) {
	s, backend := newTestStore(t)

	posts := s.GetPosts()
	require.Len(t, posts, 1)
	assert.Equal(t, "1", posts[0].ID)
	assert.Equal(t, "metaon-2-launch", posts[0].Slug)

	sections := s.GetSections()
	require.Len(t, sections, 3)
	assert.Equal(t, model.SectionHero, sections[0].ID)

	cfg := s.GetConfig()
	assert.Equal(t, DefaultAccentColor, cfg.AccentColor)
	assert.Equal(t, DefaultSiteName, cfg.SiteName)
	assert.Equal(t, DefaultContactEmail, cfg.ContactEmail)

	assert.Empty(t, s.GetInquiries())
	assert.Empty(t, s.GetAssets())

	// Seeding performs the initial write.
	assert.Equal(t, 1, backend.SaveCount)
}

func TestLoadReadsExistingSnapshot(t *testing.T) {
	backend := NewMemoryBackend()

	first := New(backend, testLogger())
	require.NoError(t, first.Load(context.Background()))
	require.NoError(t, first.UpdateConfig(context.Background(), model.SiteConfig{
		AccentColor:  "#000000",
		SiteName:     "Changed",
		ContactEmail: "x@example.com",
	}))

	second := New(backend, testLogger())
	require.NoError(t, second.Load(context.Background()))
	assert.Equal(t, "Changed", second.GetConfig().SiteName)
}

func TestSavePostNewID(t *testing.T) {
	s, _ := newTestStore(t)

	post := model.Post{
		ID:    "p-new",
		Slug:  "new-post",
		Title: model.BilingualText{EN: "New", KR: "신규"},
	}
	require.NoError(t, s.SavePost(context.Background(), post))

	posts := s.GetPosts()
	require.Len(t, posts, 2)

	var found int
	for _, p := range posts {
		if p.ID == "p-new" {
			found++
			assert.Equal(t, post.Slug, p.Slug)
			assert.Equal(t, post.Title, p.Title)
		}
	}
	assert.Equal(t, 1, found, "exactly one post with the new id")
}

func TestSavePostExistingIDReplacesInPlace(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.SavePost(context.Background(), model.Post{ID: "2", Slug: "second"}))
	before := s.GetPosts()

	updated := model.Post{
		ID:    "1",
		Slug:  "metaon-2-launch",
		Title: model.BilingualText{EN: "Edited", KR: "수정됨"},
	}
	require.NoError(t, s.SavePost(context.Background(), updated))

	after := s.GetPosts()
	require.Len(t, after, len(before), "replace must not change the count")
	assert.Equal(t, "1", after[0].ID, "position preserved")
	assert.Equal(t, "Edited", after[0].Title.EN)
	assert.Equal(t, "2", after[1].ID)
}

func TestDeletePostRemovesExactlyOne(t *testing.T) {
	s, _ := newTestStore(t)

	other := model.Post{ID: "2", Slug: "kept", Title: model.BilingualText{EN: "Kept"}}
	require.NoError(t, s.SavePost(context.Background(), other))

	require.NoError(t, s.DeletePost(context.Background(), "1"))

	posts := s.GetPosts()
	require.Len(t, posts, 1)
	assert.Equal(t, other, posts[0], "untouched posts survive unchanged")
}

func TestDeleteSeededPostLeavesEmptyCollection(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.DeletePost(context.Background(), "1"))
	assert.Empty(t, s.GetPosts())
}

func TestFindPostBySlugFirstMatchWins(t *testing.T) {
	s, _ := newTestStore(t)

	dup := model.Post{ID: "dup", Slug: "metaon-2-launch", Title: model.BilingualText{EN: "Duplicate"}}
	require.NoError(t, s.SavePost(context.Background(), dup))

	p, ok := s.FindPostBySlug("metaon-2-launch")
	require.True(t, ok)
	assert.Equal(t, "1", p.ID, "earlier post wins on shared slug")

	_, ok = s.FindPostBySlug("missing")
	assert.False(t, ok)
}

func TestUpdateSectionUnknownID(t *testing.T) {
	s, backend := newTestStore(t)
	saves := backend.SaveCount
	before := s.GetSections()

	err := s.UpdateSection(context.Background(), model.SiteSection{ID: "pricing"})
	require.ErrorIs(t, err, ErrSectionNotFound)

	assert.Equal(t, before, s.GetSections(), "sections unchanged")
	assert.Equal(t, saves, backend.SaveCount, "no persistence write")
}

func TestUpdateSectionKnownID(t *testing.T) {
	s, _ := newTestStore(t)

	sec, ok := s.GetSection(model.SectionHero)
	require.True(t, ok)
	sec.Title.EN = "New Hero Title"
	require.NoError(t, s.UpdateSection(context.Background(), sec))

	got, ok := s.GetSection(model.SectionHero)
	require.True(t, ok)
	assert.Equal(t, "New Hero Title", got.Title.EN)
}

func TestAddInquiryStampsIDAndDate(t *testing.T) {
	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	backend := NewMemoryBackend()
	s := New(backend, testLogger(),
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() string { return "fixed-id" }))
	require.NoError(t, s.Load(context.Background()))

	in := model.Inquiry{
		Name:    "Jane",
		Company: "Acme",
		Role:    "",
		Email:   "jane@acme.com",
		Country: "US",
		Message: "Hi",
	}
	saved, err := s.AddInquiry(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", saved.ID)
	assert.Equal(t, now, saved.Date)

	all := s.GetInquiries()
	require.Len(t, all, 1)
	assert.Equal(t, "", all[0].Role, "role is stored as given, not defaulted")
	assert.Equal(t, "Jane", all[0].Name)
}

func TestAssetsMostRecentFirst(t *testing.T) {
	s, _ := newTestStore(t)

	a := model.Asset{ID: "a", Name: "first.png", Type: "image/png"}
	b := model.Asset{ID: "b", Name: "second.png", Type: "image/png"}
	require.NoError(t, s.AddAsset(context.Background(), a))
	require.NoError(t, s.AddAsset(context.Background(), b))

	assets := s.GetAssets()
	require.Len(t, assets, 2)
	assert.Equal(t, "b", assets[0].ID)
	assert.Equal(t, "a", assets[1].ID)

	require.NoError(t, s.DeleteAsset(context.Background(), "b"))
	assets = s.GetAssets()
	require.Len(t, assets, 1)
	assert.Equal(t, "a", assets[0].ID)
}

func TestGetConfigIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, s.GetConfig(), s.GetConfig())
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	s, backend := newTestStore(t)
	backend.FailSaves = true

	err := s.SavePost(context.Background(), model.Post{ID: "p", Slug: "p"})
	require.Error(t, err)

	// In-memory state is ahead of durable state.
	assert.Len(t, s.GetPosts(), 2)

	backend.FailSaves = false
	reloaded := New(backend, testLogger())
	require.NoError(t, reloaded.Load(context.Background()))
	assert.Len(t, reloaded.GetPosts(), 1, "durable state never saw the failed write")
}
