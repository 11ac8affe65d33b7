package ui

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/depeter/shutterfolio/internal/cache"
	"github.com/depeter/shutterfolio/internal/motion"
)

// TextureCache is the image cache specialised to ebiten textures.
type TextureCache = cache.ImageCache[*ebiten.Image]

// NewTextureCache creates the on-disk image cache used by every view.
func NewTextureCache(dir string, logger *zap.Logger) (*TextureCache, error) {
	return cache.NewImageCache(dir, func(img image.Image) *ebiten.Image {
		return ebiten.NewImageFromImage(img)
	}, logger)
}

// Images requests each source from the cache once and hands back what has
// arrived so far. Views call Get every frame.
type Images struct {
	cache     *TextureCache
	mu        sync.Mutex
	requested map[string]bool
}

func NewImages(c *TextureCache) *Images {
	return &Images{cache: c, requested: make(map[string]bool)}
}

// Get returns the image for src, or nil while it is loading or if it failed.
func (im *Images) Get(src string) *ebiten.Image {
	if im == nil || im.cache == nil || src == "" {
		return nil
	}
	if img, ok := im.cache.Get(src); ok {
		return img
	}
	im.mu.Lock()
	first := !im.requested[src]
	im.requested[src] = true
	im.mu.Unlock()
	if first {
		im.cache.LoadAsync(src, func(*ebiten.Image) {})
	}
	return nil
}

// Aspect returns width/height of the loaded image, or fallback.
func (im *Images) Aspect(src string, fallback float64) float64 {
	img := im.Get(src)
	if img == nil {
		return fallback
	}
	b := img.Bounds()
	if b.Dy() == 0 {
		return fallback
	}
	return float64(b.Dx()) / float64(b.Dy())
}

// drawCover draws img scaled to cover r, cropped to r. desaturate renders
// it in greyscale.
func drawCover(dst, img *ebiten.Image, r motion.Rect, desaturate bool, alpha float64) {
	if img == nil || r.Empty() {
		return
	}
	clip := image.Rect(int(r.X), int(r.Y), int(r.X+r.W+0.5), int(r.Y+r.H+0.5)).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	sub := dst.SubImage(clip).(*ebiten.Image)

	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	scale := r.W / iw
	if s := r.H / ih; s > scale {
		scale = s
	}
	op := &colorm.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.X+(r.W-iw*scale)/2, r.Y+(r.H-ih*scale)/2)
	op.Filter = ebiten.FilterLinear

	var cm colorm.ColorM
	if desaturate {
		cm.ChangeHSV(0, 0, 0.85)
	}
	if alpha < 1 {
		cm.Scale(1, 1, 1, alpha)
	}
	colorm.DrawImage(sub, img, cm, op)
}

// drawPlaceholder fills r while its image is loading.
func drawPlaceholder(dst *ebiten.Image, r motion.Rect, p Palette, label string) {
	fillRect(dst, r, p.Surface)
	if label != "" {
		DrawTextCentered(dst, truncateText(label, r.W-16, FontSizeSmall), r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, p.TextMuted)
	}
}

func fillRect(dst *ebiten.Image, r motion.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r motion.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, false)
}
