package cache

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func bounds(img image.Image) image.Rectangle { return img.Bounds() }

func wait(t *testing.T, ch <-chan image.Rectangle) image.Rectangle {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("image never loaded")
		return image.Rectangle{}
	}
}

func TestLoadAsync_HTTPAndDiskCache(t *testing.T) {
	data := pngBytes(t, 4, 3)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	dir := t.TempDir()
	ic, err := NewImageCache(dir, bounds, nil)
	require.NoError(t, err)

	got := make(chan image.Rectangle, 2)
	src := srv.URL + "/a.png"
	ic.LoadAsync(src, func(r image.Rectangle) { got <- r })
	assert.Equal(t, image.Rect(0, 0, 4, 3), wait(t, got))

	r, ok := ic.Get(src)
	assert.True(t, ok)
	assert.Equal(t, 3, r.Dy())

	// A fresh cache over the same directory reads from disk.
	ic2, err := NewImageCache(dir, bounds, nil)
	require.NoError(t, err)
	ic2.LoadAsync(src, func(r image.Rectangle) { got <- r })
	wait(t, got)
	assert.Equal(t, int32(1), hits.Load())
}

func TestLoadAsync_ConcurrentCallersAllNotified(t *testing.T) {
	data := pngBytes(t, 2, 2)
	release := make(chan struct{})
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	ic, err := NewImageCache(t.TempDir(), bounds, nil)
	require.NoError(t, err)

	const callers = 5
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		ic.LoadAsync(srv.URL+"/b.png", func(image.Rectangle) { wg.Done() })
	}
	close(release)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("not every caller was notified")
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestLoadAsync_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 7, 5), 0o644))

	ic, err := NewImageCache(t.TempDir(), bounds, nil)
	require.NoError(t, err)

	got := make(chan image.Rectangle, 2)
	ic.LoadAsync(path, func(r image.Rectangle) { got <- r })
	assert.Equal(t, 7, wait(t, got).Dx())

	ic.LoadAsync("file://"+path, func(r image.Rectangle) { got <- r })
	assert.Equal(t, 5, wait(t, got).Dy())
}

func TestLoadAsync_FailureIsRemembered(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	ic, err := NewImageCache(t.TempDir(), bounds, nil)
	require.NoError(t, err)

	src := srv.URL + "/missing.png"
	ic.LoadAsync(src, func(image.Rectangle) { t.Error("callback ran for a failed load") })
	assert.Eventually(t, func() bool { return ic.Failed(src) }, 5*time.Second, 10*time.Millisecond)

	ic.LoadAsync(src, func(image.Rectangle) { t.Error("callback ran for a failed load") })
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), hits.Load())

	ic.Clear()
	assert.False(t, ic.Failed(src))
}

func TestLocalPath(t *testing.T) {
	p, ok := localPath("https://cdn.example.com/x.jpg")
	assert.False(t, ok)
	assert.Empty(t, p)

	p, ok = localPath("file:///srv/photos/x.jpg")
	assert.True(t, ok)
	assert.Equal(t, "/srv/photos/x.jpg", p)

	p, ok = localPath("photos/x.jpg")
	assert.True(t, ok)
	assert.Equal(t, "photos/x.jpg", p)
}

func TestClearDisk(t *testing.T) {
	data := pngBytes(t, 2, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "images")
	ic, err := NewImageCache(dir, bounds, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, ic.CacheDir())

	got := make(chan image.Rectangle, 1)
	src := srv.URL + "/b.png"
	ic.LoadAsync(src, func(r image.Rectangle) { got <- r })
	wait(t, got)
	assert.FileExists(t, ic.diskPath(src))

	require.NoError(t, ic.ClearDisk())
	assert.NoDirExists(t, dir)
}
