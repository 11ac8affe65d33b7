package carousel

// Geometry reports the width of one unique pass through the items.
// ok is false until the track has been laid out at least once.
type Geometry interface {
	LoopDistance() (width float64, ok bool)
}

// GeometryFunc adapts a plain function to Geometry.
type GeometryFunc func() (float64, bool)

func (f GeometryFunc) LoopDistance() (float64, bool) { return f() }

// Track is a Geometry fed by the renderer with the widths of the cards it
// laid out for the full display sequence.
type Track struct {
	widths []float64
	gap    float64
}

// Measure records the widths of every rendered card (both copies) and the gap
// between them. Called by the renderer whenever it lays the track out.
func (t *Track) Measure(widths []float64, gap float64) {
	t.widths = append(t.widths[:0], widths...)
	t.gap = gap
}

// Reset forgets the last measurement.
func (t *Track) Reset() {
	t.widths = t.widths[:0]
	t.gap = 0
}

// Width returns the total rendered track width, gaps included.
func (t *Track) Width() float64 {
	var w float64
	for _, cw := range t.widths {
		w += cw + t.gap
	}
	return w
}

// LoopDistance is half the track width: the two halves are identical.
func (t *Track) LoopDistance() (float64, bool) {
	w := t.Width() / 2
	if w <= 0 {
		return 0, false
	}
	return w, true
}
