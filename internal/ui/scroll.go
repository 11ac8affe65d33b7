package ui

import "github.com/depeter/shutterfolio/internal/motion"

// ScrollState provides vertical page scrolling with smooth animation.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	// MaxScrollY bounds the target; the page sets it from its content height.
	MaxScrollY float64
}

// HandleMouseWheel updates the target scroll position from mouse wheel input.
func (s *ScrollState) HandleMouseWheel() {
	_, wy := MouseWheelDelta()
	if wy != 0 {
		s.ScrollTo(s.TargetScrollY - wy*ScrollWheelSpeed)
	}
}

// ScrollBy moves the target by dy pixels.
func (s *ScrollState) ScrollBy(dy float64) {
	s.ScrollTo(s.TargetScrollY + dy)
}

// ScrollTo sets the target, clamped to the page.
func (s *ScrollState) ScrollTo(y float64) {
	if y > s.MaxScrollY {
		y = s.MaxScrollY
	}
	if y < 0 {
		y = 0
	}
	s.TargetScrollY = y
}

// Jump moves immediately without animating, as a drag does.
func (s *ScrollState) Jump(y float64) {
	s.ScrollTo(y)
	s.ScrollY = s.TargetScrollY
}

// Animate performs smooth scroll interpolation. Call this from Update().
func (s *ScrollState) Animate() {
	s.ScrollY = motion.Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
	if d := s.ScrollY - s.TargetScrollY; d > -0.5 && d < 0.5 {
		s.ScrollY = s.TargetScrollY
	}
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}
