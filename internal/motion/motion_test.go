package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasing_Endpoints(t *testing.T) {
	for name, fn := range map[string]func(float64) float64{
		"out":   EaseOutCubic,
		"inout": EaseInOutCubic,
	} {
		assert.Equal(t, 0.0, fn(0), name)
		assert.Equal(t, 1.0, fn(1), name)
		assert.Equal(t, 0.0, fn(-3), name)
		assert.Equal(t, 1.0, fn(7), name)
	}
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-12)
	assert.Greater(t, EaseOutCubic(0.5), 0.5)
}

func TestRect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 50}
	b := Rect{X: 100, Y: 200, W: 300, H: 150}
	assert.Equal(t, Rect{X: 50, Y: 100, W: 200, H: 100}, a.Lerp(b, 0.5))
	assert.True(t, a.Contains(100, 50))
	assert.False(t, a.Contains(101, 0))
	cx, cy := b.Center()
	assert.Equal(t, 250.0, cx)
	assert.Equal(t, 275.0, cy)
	assert.True(t, Rect{W: 0, H: 3}.Empty())
}

func TestFitRect(t *testing.T) {
	// landscape image bounded by width
	r := FitRect(1920, 1080, 1200, 800, 2)
	assert.Equal(t, Rect{X: 360, Y: 240, W: 1200, H: 600}, r)
	// portrait image bounded by height
	r = FitRect(1920, 1080, 1200, 800, 0.5)
	assert.Equal(t, Rect{X: 760, Y: 140, W: 400, H: 800}, r)
}

func TestFlip_OpenAndClose(t *testing.T) {
	from := Rect{X: 10, Y: 20, W: 100, H: 100}
	to := Rect{X: 500, Y: 300, W: 800, H: 600}
	f := NewFlip(from, to, 400*time.Millisecond)
	base := time.Unix(100, 0)

	f.Open(base)
	r, p := f.Frame(base)
	assert.Equal(t, from, r)
	assert.Equal(t, 0.0, p)

	r, _ = f.Frame(base.Add(200 * time.Millisecond))
	assert.Greater(t, r.W, from.W)
	assert.Less(t, r.W, to.W)
	assert.Equal(t, FlipOpening, f.Phase())

	r, p = f.Frame(base.Add(400 * time.Millisecond))
	assert.Equal(t, to, r)
	assert.Equal(t, 1.0, p)
	assert.Equal(t, FlipOpen, f.Phase())

	f.Close(base.Add(time.Second))
	r, _ = f.Frame(base.Add(time.Second + 200*time.Millisecond))
	assert.Less(t, r.W, to.W)
	assert.False(t, f.Closed())

	r, _ = f.Frame(base.Add(time.Second + 400*time.Millisecond))
	assert.Equal(t, from, r)
	assert.True(t, f.Closed())
}

func TestFlip_CloseMidOpenDoesNotSnap(t *testing.T) {
	from := Rect{W: 100, H: 100}
	to := Rect{W: 1100, H: 1100}
	f := NewFlip(from, to, time.Second)
	base := time.Unix(100, 0)
	f.Open(base)
	mid, _ := f.Frame(base.Add(500 * time.Millisecond))

	f.Close(base.Add(500 * time.Millisecond))
	r, _ := f.Frame(base.Add(500 * time.Millisecond))
	assert.InDelta(t, mid.W, r.W, 1e-9)
}

func TestFlip_CloseWhenIdleIgnored(t *testing.T) {
	f := NewFlip(Rect{}, Rect{W: 1, H: 1}, 0)
	f.Close(time.Now())
	assert.True(t, f.Closed())
	assert.Equal(t, 450*time.Millisecond, f.Duration)
}

func TestProgress_HoldsUntilComplete(t *testing.T) {
	p := NewProgress(time.Second)
	base := time.Unix(0, 0)
	assert.Equal(t, 0, p.Value(base))
	mid := p.Value(base.Add(500 * time.Millisecond))
	assert.Greater(t, mid, 0)
	assert.Less(t, mid, 100)

	assert.Equal(t, 99, p.Value(base.Add(5*time.Second)))
	assert.False(t, p.Done(base.Add(5*time.Second)))

	p.Complete()
	assert.True(t, p.Done(base.Add(5*time.Second)))
}

func TestProgress_CompleteEarlyStillAnimates(t *testing.T) {
	p := NewProgress(time.Second)
	base := time.Unix(0, 0)
	p.Complete()
	p.Value(base)
	assert.False(t, p.Done(base.Add(100*time.Millisecond)))
	assert.True(t, p.Done(base.Add(time.Second)))
}
