package carousel

// Hover tracks the two hover signals that pause the marquee: the pointer
// over the strip as a whole, and the pointer over a particular card.
type Hover struct {
	strip bool
	item  int // display index, -1 for none
}

func newHover() Hover { return Hover{item: -1} }

func (h *Hover) EnterStrip() { h.strip = true }
func (h *Hover) LeaveStrip() { h.strip = false }

func (h *Hover) EnterItem(i int) { h.item = i }

// LeaveItem clears the highlight only if i is still the hovered card, so a
// late leave for a neighbour cannot wipe the card the pointer moved onto.
func (h *Hover) LeaveItem(i int) {
	if h.item == i {
		h.item = -1
	}
}

// Item returns the hovered display index, or -1.
func (h *Hover) Item() int { return h.item }

// Paused reports whether either signal holds the driver.
func (h *Hover) Paused() bool { return h.strip || h.item >= 0 }
