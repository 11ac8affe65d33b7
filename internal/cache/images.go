package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache provides disk + memory caching for images. T is the
// renderer's texture type; convert turns a decoded image into one.
type ImageCache[T any] struct {
	cacheDir string
	convert  func(image.Image) T
	logger   *zap.Logger
	memory   sync.Map // url -> T
	loading  sync.Map // url -> *loadEntry[T]
	failed   sync.Map // url -> error
	sem      chan struct{}
}

// loadEntry tracks an in-flight load and its waiters.
type loadEntry[T any] struct {
	mu        sync.Mutex
	done      bool
	ok        bool
	img       T
	callbacks []func(T)
}

// NewImageCache creates a cache backed by cacheDir.
func NewImageCache[T any](cacheDir string, convert func(image.Image) T, logger *zap.Logger) (*ImageCache[T], error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageCache[T]{
		cacheDir: cacheDir,
		convert:  convert,
		logger:   logger,
		sem:      make(chan struct{}, 6),
	}, nil
}

// Get returns a cached image if available.
func (ic *ImageCache[T]) Get(src string) (T, bool) {
	if v, ok := ic.memory.Load(src); ok {
		return v.(T), true
	}
	var zero T
	return zero, false
}

// Failed reports whether src could not be loaded. Failed sources are not
// retried until Clear.
func (ic *ImageCache[T]) Failed(src string) bool {
	_, ok := ic.failed.Load(src)
	return ok
}

// LoadAsync starts loading src in the background. src may be an http(s)
// URL, a file:// URL or a local path. The callback runs on a background
// goroutine once the image is ready and never runs if loading fails.
func (ic *ImageCache[T]) LoadAsync(src string, callback func(T)) {
	if src == "" || ic.Failed(src) {
		return
	}
	if v, ok := ic.memory.Load(src); ok {
		callback(v.(T))
		return
	}

	entry := &loadEntry[T]{callbacks: []func(T){callback}}
	if existing, loaded := ic.loading.LoadOrStore(src, entry); loaded {
		e := existing.(*loadEntry[T])
		e.mu.Lock()
		if !e.done {
			e.callbacks = append(e.callbacks, callback)
			e.mu.Unlock()
			return
		}
		img, ok := e.img, e.ok
		e.mu.Unlock()
		if ok {
			callback(img)
		}
		return
	}

	go ic.load(src, entry)
}

func (ic *ImageCache[T]) load(src string, entry *loadEntry[T]) {
	defer ic.loading.Delete(src)

	var (
		img T
		ok  bool
	)
	if v, hit := ic.memory.Load(src); hit {
		img, ok = v.(T), true
	} else {
		ic.sem <- struct{}{}
		decoded, err := ic.loadImage(src)
		<-ic.sem
		if err != nil {
			ic.failed.Store(src, err)
			ic.logger.Debug("image load failed", zap.String("src", src), zap.Error(err))
		} else {
			img, ok = ic.convert(decoded), true
			ic.memory.Store(src, img)
		}
	}

	entry.mu.Lock()
	entry.done, entry.ok, entry.img = true, ok, img
	cbs := entry.callbacks
	entry.callbacks = nil
	entry.mu.Unlock()

	if !ok {
		return
	}
	for _, cb := range cbs {
		cb(img)
	}
}

func (ic *ImageCache[T]) loadImage(src string) (image.Image, error) {
	if path, local := localPath(src); local {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		return img, err
	}

	diskPath := ic.diskPath(src)

	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(src)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	img, _, err := image.Decode(io.TeeReader(resp.Body, f))
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}
	return img, nil
}

// localPath returns the filesystem path for file:// URLs and bare paths.
func localPath(src string) (string, bool) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return "", false
	}
	if strings.HasPrefix(src, "file://") {
		u, err := url.Parse(src)
		if err != nil {
			return strings.TrimPrefix(src, "file://"), true
		}
		return u.Path, true
	}
	return src, true
}

func (ic *ImageCache[T]) diskPath(src string) string {
	h := sha256.Sum256([]byte(src))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache[T]) CacheDir() string {
	return ic.cacheDir
}

// Clear drops the memory cache and forgets failures.
func (ic *ImageCache[T]) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
	ic.failed.Range(func(k, _ any) bool {
		ic.failed.Delete(k)
		return true
	})
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache[T]) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
