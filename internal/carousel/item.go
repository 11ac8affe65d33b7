package carousel

import "fmt"

// Item is a single card shown in the marquee.
type Item struct {
	ID       string
	Title    string
	Category string
	Image    string
}

// Sequence returns the display sequence for items: the list followed by a
// second copy of itself, so the track can wrap without a visible seam.
func Sequence(items []Item) []Item {
	seq := make([]Item, 0, len(items)*2)
	seq = append(seq, items...)
	return append(seq, items...)
}

// Card is the render model for one card in the display sequence.
type Card struct {
	Item        Item
	Label       string // zero-padded 1-based index within the unique set
	Desaturated bool
	Scale       float64
}

// HoverScale is applied to the hovered card.
const HoverScale = 1.05

// CardFor maps an item and its hover state to what should be drawn.
// n is the number of unique items; displayIndex indexes the doubled sequence.
func CardFor(item Item, hovered bool, displayIndex, n int) Card {
	idx := displayIndex
	if n > 0 {
		idx = displayIndex % n
	}
	c := Card{
		Item:        item,
		Label:       fmt.Sprintf("%02d", idx+1),
		Desaturated: !hovered,
		Scale:       1,
	}
	if hovered {
		c.Scale = HoverScale
	}
	return c
}

func sameItems(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
