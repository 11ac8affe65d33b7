package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/depeter/shutterfolio/internal/jellyfin"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestFallback_Bundled(t *testing.T) {
	c := Fallback()
	require.NotEmpty(t, c.Projects)
	require.NotEmpty(t, c.Services)
	assert.NotEmpty(t, c.About.Headline)
	for _, p := range c.Projects {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Image)
	}
}

func TestFallback_ReturnsCopies(t *testing.T) {
	a := Fallback()
	a.Projects[0].Title = "mutated"
	a.About.Stats[0].Value = "0"
	b := Fallback()
	assert.NotEqual(t, "mutated", b.Projects[0].Title)
	assert.NotEqual(t, "0", b.About.Stats[0].Value)
}

func TestLoad_RejectedFetchFallsBack(t *testing.T) {
	logger, logs := observedLogger()
	src := SourceFunc(func(ctx context.Context) (*Catalog, error) {
		return nil, errors.New("connection refused")
	})

	got := Load(context.Background(), src, logger)
	if diff := cmp.Diff(Fallback(), got); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Message, "cms fetch failed")
}

func TestLoad_PanickingSourceFallsBack(t *testing.T) {
	logger, logs := observedLogger()
	src := SourceFunc(func(ctx context.Context) (*Catalog, error) {
		panic("boom")
	})

	var got *Catalog
	require.NotPanics(t, func() { got = Load(context.Background(), src, logger) })
	if diff := cmp.Diff(Fallback(), got); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestLoad_NotConfigured(t *testing.T) {
	logger, logs := observedLogger()
	got := Load(context.Background(), nil, logger)
	assert.Empty(t, cmp.Diff(Fallback(), got))
	assert.Equal(t, 1, logs.FilterMessage("no cms configured, using bundled content").Len())
}

func TestLoad_MergesMissingLists(t *testing.T) {
	only := []Project{{ID: "x", Title: "From CMS", Category: "Portrait", Image: "https://cms/x.jpg"}}
	src := SourceFunc(func(ctx context.Context) (*Catalog, error) {
		return &Catalog{Projects: only}, nil
	})

	got := Load(context.Background(), src, zap.NewNop())
	assert.Equal(t, only, got.Projects)
	assert.Equal(t, Fallback().Services, got.Services)
	assert.Equal(t, Fallback().About, got.About)
}

func TestLoad_NilLogger(t *testing.T) {
	assert.NotNil(t, Load(context.Background(), nil, nil))
}

func TestLoadAsync(t *testing.T) {
	done := make(chan *Catalog, 1)
	LoadAsync(context.Background(), nil, zap.NewNop(), func(c *Catalog) { done <- c })
	got := <-done
	assert.NotEmpty(t, got.Projects)
}

func TestCatalog_CategoriesAndFilter(t *testing.T) {
	c := &Catalog{Projects: []Project{
		{ID: "1", Category: "Wedding"},
		{ID: "2", Category: "Portrait"},
		{ID: "3", Category: "Wedding"},
		{ID: "4", Category: ""},
	}}
	assert.Equal(t, []string{AllCategories, "Wedding", "Portrait"}, c.Categories())
	assert.Len(t, c.Filter(AllCategories), 4)
	assert.Len(t, c.Filter(""), 4)

	weddings := c.Filter("Wedding")
	require.Len(t, weddings, 2)
	assert.Equal(t, "1", weddings[0].ID)
	assert.Equal(t, "3", weddings[1].ID)
	assert.Empty(t, c.Filter("Drone"))

	p, ok := c.Project("2")
	assert.True(t, ok)
	assert.Equal(t, "Portrait", p.Category)
	_, ok = c.Project("nope")
	assert.False(t, ok)
}

func TestCatalog_MarqueeItems(t *testing.T) {
	c := &Catalog{Projects: []Project{
		{ID: "1", Title: "a", Featured: true},
		{ID: "2", Title: "b"},
		{ID: "3", Title: "c", Featured: true},
	}}
	items := c.MarqueeItems()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)

	c.Projects[0].Featured = false
	c.Projects[2].Featured = false
	assert.Len(t, c.MarqueeItems(), 3)
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := ParseCatalog([]byte("projects: [unterminated"))
	assert.Error(t, err)
}

type fakeLibrary struct {
	albums []jellyfin.Photo
	photos map[string][]jellyfin.Photo
	err    error
}

func (f *fakeLibrary) GetPhotoAlbums(ctx context.Context, libraryID string) ([]jellyfin.Photo, error) {
	return f.albums, f.err
}

func (f *fakeLibrary) GetPhotos(ctx context.Context, album jellyfin.Photo) ([]jellyfin.Photo, error) {
	return f.photos[album.ID], nil
}

func (f *fakeLibrary) GetPhotoURL(id string) string { return "https://jf/" + id }

func TestJellyfinSource(t *testing.T) {
	lib := &fakeLibrary{
		albums: []jellyfin.Photo{{ID: "a1", Name: "Weddings"}, {ID: "a2", Name: "Travel"}},
		photos: map[string][]jellyfin.Photo{
			"a1": {
				{ID: "p1", Name: " Vows ", Year: 2024, HasImage: true, Favorite: true},
				{ID: "p2", Name: "no image"},
			},
			"a2": {{ID: "p3", Name: "Kyoto", HasImage: true}},
		},
	}
	src := &JellyfinSource{Library: lib, LibraryID: "lib"}
	cat, err := src.Fetch(context.Background())
	require.NoError(t, err)

	want := []Project{
		{ID: "p1", Title: "Vows", Category: "Weddings", Image: "https://jf/p1", Year: 2024, Featured: true},
		{ID: "p3", Title: "Kyoto", Category: "Travel", Image: "https://jf/p3"},
	}
	assert.Empty(t, cmp.Diff(want, cat.Projects))
}

func TestJellyfinSource_ErrorFallsBack(t *testing.T) {
	src := &JellyfinSource{Library: &fakeLibrary{err: errors.New("401 Unauthorized")}}
	got := Load(context.Background(), src, zap.NewNop())
	assert.Empty(t, cmp.Diff(Fallback(), got))
}
