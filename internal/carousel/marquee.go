// Package carousel implements the self-driving marquee: a doubled strip of
// cards that drifts left at a constant rate, pauses on hover, can be dragged
// by mouse or touch, and wraps seamlessly.
//
// Everything here runs on the host's update thread. The host calls Frame once
// per display refresh (through a FrameHost) and forwards pointer events; no
// method is safe for concurrent use.
package carousel

import "time"

// FrameHost delivers one callback per display refresh. The returned cancel
// func deregisters the callback.
type FrameHost interface {
	OnFrame(fn func(now time.Time)) (cancel func())
}

// Options are the tunables of a marquee.
type Options struct {
	Speed        float64 // px per millisecond
	Damping      float64 // drag distance multiplier, < 1
	TapThreshold float64 // px
}

// DefaultOptions drift at ~33px/s, halve drag distance and use a 10px tap slop.
func DefaultOptions() Options {
	return Options{
		Speed:        0.033,
		Damping:      0.5,
		TapThreshold: 10,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Speed <= 0 {
		o.Speed = def.Speed
	}
	if o.Damping <= 0 {
		o.Damping = def.Damping
	}
	if o.TapThreshold <= 0 {
		o.TapThreshold = def.TapThreshold
	}
	return o
}

// Marquee owns the scroll offset and everything that writes to it.
type Marquee struct {
	opts     Options
	geometry Geometry

	items  []Item
	seq    []Item
	taps   []TapGuard
	offset float64

	driver *Driver
	drag   DragState
	hover  Hover

	lastActive int
	cancel     func()

	// OnClick is invoked with no arguments when a card is tapped.
	OnClick func()
	// OnActiveChange receives the unique index of the highlighted card, or -1.
	OnActiveChange func(index int)
}

// New creates a marquee over items measured by geometry.
func New(items []Item, geometry Geometry, opts Options) *Marquee {
	opts = opts.withDefaults()
	m := &Marquee{
		opts:       opts,
		geometry:   geometry,
		driver:     NewDriver(opts.Speed),
		hover:      newHover(),
		lastActive: -1,
	}
	m.SetItems(items)
	return m
}

// SetItems replaces the unique item list. The display sequence, tap guards
// and offset are rebuilt only when the list actually changed.
func (m *Marquee) SetItems(items []Item) {
	if m.seq != nil && sameItems(m.items, items) {
		return
	}
	m.items = append([]Item(nil), items...)
	m.seq = Sequence(m.items)
	m.taps = make([]TapGuard, len(m.seq))
	for i := range m.taps {
		m.taps[i].Threshold = m.opts.TapThreshold
	}
	m.offset = 0
	m.hover.item = -1
	m.notifyActive()
}

func (m *Marquee) Items() []Item    { return m.items }
func (m *Marquee) Sequence() []Item { return m.seq }
func (m *Marquee) Offset() float64  { return m.offset }
func (m *Marquee) Options() Options { return m.opts }

func (m *Marquee) State() DriverState { return m.driver.State() }
func (m *Marquee) Dragging() bool     { return m.drag.Dragging() }
func (m *Marquee) HoveredItem() int   { return m.hover.Item() }

// Suspended reports whether any suspend condition currently holds.
func (m *Marquee) Suspended() bool {
	return m.drag.Dragging() || m.hover.Paused()
}

// Attach registers the marquee's frame callback with host. Attaching again
// replaces the previous registration.
func (m *Marquee) Attach(host FrameHost) {
	m.Close()
	m.cancel = host.OnFrame(m.Frame)
}

// Close deregisters the frame callback. The marquee stops advancing.
func (m *Marquee) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Frame runs one animation frame.
func (m *Marquee) Frame(now time.Time) {
	delta := m.driver.Step(now, m.Suspended())
	loop, ok := m.geometry.LoopDistance()
	if !ok {
		// Not laid out yet: nothing to wrap against, so hold still.
		return
	}
	m.offset = Normalize(m.offset+delta, loop)
}

// PressStart begins a gesture at (x, y). The driver is suspended until
// PressEnd.
func (m *Marquee) PressStart(x, y float64) {
	m.drag.begin(x, y)
}

// PressMove applies pointer movement. It returns true when the gesture is
// horizontal and the host should not scroll the page for it.
func (m *Marquee) PressMove(x, y float64) bool {
	if !m.drag.Dragging() {
		return false
	}
	dx, dy := m.drag.sample(x, y)
	if abs(dx) <= abs(dy) {
		return false
	}
	loop, _ := m.geometry.LoopDistance()
	m.offset = ClampDrag(m.offset+dx*m.opts.Damping, loop)
	return true
}

// PressEnd finishes a gesture and corrects the offset right away, before the
// driver resumes.
func (m *Marquee) PressEnd() {
	if !m.drag.Dragging() {
		return
	}
	m.drag.end()
	if m.offset > 0 {
		m.offset = 0
	}
	if loop, ok := m.geometry.LoopDistance(); ok {
		m.offset = Normalize(m.offset, loop)
	}
}

func (m *Marquee) EnterStrip() { m.hover.EnterStrip() }
func (m *Marquee) LeaveStrip() { m.hover.LeaveStrip() }

// EnterItem highlights the card at display index i.
func (m *Marquee) EnterItem(i int) {
	if i < 0 || i >= len(m.seq) {
		return
	}
	m.hover.EnterItem(i)
	m.notifyActive()
}

func (m *Marquee) LeaveItem(i int) {
	m.hover.LeaveItem(i)
	m.notifyActive()
}

// ItemDown records where the pointer went down on card i.
func (m *Marquee) ItemDown(i int, x, y float64) {
	if i < 0 || i >= len(m.taps) {
		return
	}
	m.taps[i].Down(x, y)
}

// ItemClick handles a click on card i and reports whether OnClick fired.
func (m *Marquee) ItemClick(i int, x, y float64) bool {
	if i < 0 || i >= len(m.taps) {
		return false
	}
	if !m.taps[i].Click(x, y) {
		return false
	}
	if m.OnClick != nil {
		m.OnClick()
	}
	return true
}

// Cards returns the render model for the full display sequence.
func (m *Marquee) Cards() []Card {
	cards := make([]Card, len(m.seq))
	hovered := m.hover.Item()
	for i, it := range m.seq {
		cards[i] = CardFor(it, i == hovered, i, len(m.items))
	}
	return cards
}

// ActiveIndex is the unique index of the highlighted card, or -1.
func (m *Marquee) ActiveIndex() int {
	i := m.hover.Item()
	if i < 0 || len(m.items) == 0 {
		return -1
	}
	return i % len(m.items)
}

func (m *Marquee) notifyActive() {
	a := m.ActiveIndex()
	if a == m.lastActive {
		return
	}
	m.lastActive = a
	if m.OnActiveChange != nil {
		m.OnActiveChange(a)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
