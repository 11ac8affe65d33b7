package motion

import "time"

// FlipPhase is where a Flip transition currently is.
type FlipPhase int

const (
	FlipIdle FlipPhase = iota
	FlipOpening
	FlipOpen
	FlipClosing
)

// Flip animates a dialog from the rectangle of the card that was clicked
// (captured at click time) to its resting rectangle, and back again on close.
type Flip struct {
	From, To Rect
	Duration time.Duration

	phase FlipPhase
	start time.Time
	// progress at the moment a reversal started, so closing mid-open does
	// not snap.
	startProgress float64
}

// NewFlip prepares a transition from the card rect to the dialog rect.
func NewFlip(from, to Rect, d time.Duration) *Flip {
	if d <= 0 {
		d = 450 * time.Millisecond
	}
	return &Flip{From: from, To: to, Duration: d}
}

func (f *Flip) Phase() FlipPhase { return f.phase }

// Open starts growing towards To.
func (f *Flip) Open(now time.Time) {
	f.startProgress = 0
	f.start = now
	f.phase = FlipOpening
}

// Close starts shrinking back to From from wherever the dialog is now.
func (f *Flip) Close(now time.Time) {
	if f.phase == FlipIdle || f.phase == FlipClosing {
		return
	}
	f.startProgress = f.progress(now)
	f.start = now
	f.phase = FlipClosing
}

// progress returns the linear 0..1 position along From→To.
func (f *Flip) progress(now time.Time) float64 {
	t := Clamp01(float64(now.Sub(f.start)) / float64(f.Duration))
	switch f.phase {
	case FlipOpening:
		return t
	case FlipOpen:
		return 1
	case FlipClosing:
		return f.startProgress * (1 - t)
	default:
		return 0
	}
}

// Frame returns the rectangle to draw at now and the eased progress, which
// callers use for backdrop opacity. Phase changes happen here.
func (f *Flip) Frame(now time.Time) (Rect, float64) {
	p := f.progress(now)
	elapsed := now.Sub(f.start)
	switch f.phase {
	case FlipOpening:
		if elapsed >= f.Duration {
			f.phase = FlipOpen
			p = 1
		}
	case FlipClosing:
		if elapsed >= f.Duration || p <= 0 {
			f.phase = FlipIdle
			p = 0
		}
	}
	e := EaseOutCubic(p)
	return f.From.Lerp(f.To, e), e
}

// Closed reports whether the transition has fully returned to the card.
func (f *Flip) Closed() bool { return f.phase == FlipIdle }
