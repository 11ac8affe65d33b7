package motion

import "time"

// Progress drives the preloader's 0..100 counter. It eases towards 100 over
// Duration but holds at 99 until Complete is called, so the counter never
// claims readiness before content has arrived.
type Progress struct {
	Duration time.Duration

	start    time.Time
	started  bool
	complete bool
}

func NewProgress(d time.Duration) *Progress {
	return &Progress{Duration: d}
}

// Complete marks the underlying work as done.
func (p *Progress) Complete() { p.complete = true }

// Value returns the counter at now. The first call starts the clock.
func (p *Progress) Value(now time.Time) int {
	if !p.started {
		p.started = true
		p.start = now
	}
	if p.Duration <= 0 {
		if p.complete {
			return 100
		}
		return 99
	}
	t := Clamp01(float64(now.Sub(p.start)) / float64(p.Duration))
	v := int(EaseInOutCubic(t) * 100)
	if v >= 100 {
		if p.complete {
			return 100
		}
		return 99
	}
	return v
}

// Done reports whether the counter has reached 100.
func (p *Progress) Done(now time.Time) bool {
	return p.Value(now) == 100
}
