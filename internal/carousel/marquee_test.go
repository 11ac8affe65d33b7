package carousel

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:       fmt.Sprintf("p%d", i),
			Title:    fmt.Sprintf("Project %d", i),
			Category: "Wedding",
			Image:    fmt.Sprintf("https://example.com/%d.jpg", i),
		}
	}
	return items
}

func fixedLoop(w float64) Geometry {
	return GeometryFunc(func() (float64, bool) { return w, w > 0 })
}

// fakeHost records registrations so tests can tick frames by hand.
type fakeHost struct {
	fns       map[int]func(time.Time)
	next      int
	cancelled int
}

func (h *fakeHost) OnFrame(fn func(time.Time)) func() {
	if h.fns == nil {
		h.fns = make(map[int]func(time.Time))
	}
	id := h.next
	h.next++
	h.fns[id] = fn
	return func() {
		if _, ok := h.fns[id]; ok {
			delete(h.fns, id)
			h.cancelled++
		}
	}
}

func (h *fakeHost) tick(now time.Time) {
	for _, fn := range h.fns {
		fn(now)
	}
}

func TestSequence_Doubles(t *testing.T) {
	for n := 1; n <= 12; n++ {
		items := testItems(n)
		seq := Sequence(items)
		require.Len(t, seq, 2*n)
		for i := 0; i < n; i++ {
			assert.Equal(t, seq[i], seq[i+n], "n=%d i=%d", n, i)
		}
	}
}

func TestSequence_DoesNotAliasInput(t *testing.T) {
	items := testItems(2)
	seq := Sequence(items)
	seq[0].Title = "changed"
	assert.Equal(t, "Project 0", items[0].Title)
}

func TestFrame_RunningStrictlyDecreases(t *testing.T) {
	m := New(testItems(4), fixedLoop(1e9), DefaultOptions())
	base := time.Unix(1000, 0)

	m.Frame(base) // enters Running, no movement
	assert.Equal(t, Running, m.State())
	assert.Equal(t, 0.0, m.Offset())

	prev := m.Offset()
	for i := 1; i <= 50; i++ {
		m.Frame(base.Add(time.Duration(i) * 16 * time.Millisecond))
		require.Less(t, m.Offset(), prev, "frame %d", i)
		prev = m.Offset()
	}
	assert.InDelta(t, -0.033*16*50, m.Offset(), 1e-9)
}

func TestFrame_SuspendedHoldsStill(t *testing.T) {
	m := New(testItems(4), fixedLoop(1000), DefaultOptions())
	base := time.Unix(1000, 0)
	m.Frame(base)
	m.Frame(base.Add(100 * time.Millisecond))
	held := m.Offset()

	m.EnterStrip()
	for i := 2; i < 20; i++ {
		m.Frame(base.Add(time.Duration(i) * 100 * time.Millisecond))
		assert.Equal(t, held, m.Offset())
		assert.Equal(t, Suspended, m.State())
	}
}

func TestFrame_ResumeDoesNotJump(t *testing.T) {
	m := New(testItems(4), fixedLoop(1e6), DefaultOptions())
	base := time.Unix(1000, 0)
	m.Frame(base)
	m.EnterStrip()
	m.Frame(base.Add(time.Second))
	before := m.Offset()

	m.LeaveStrip()
	// A long pause must not be billed as elapsed time.
	m.Frame(base.Add(time.Hour))
	assert.Equal(t, before, m.Offset())
	m.Frame(base.Add(time.Hour + 10*time.Millisecond))
	assert.InDelta(t, before-0.33, m.Offset(), 1e-9)
}

func TestFrame_NotMeasuredSkipsMath(t *testing.T) {
	var track Track
	m := New(testItems(3), &track, DefaultOptions())
	base := time.Unix(1000, 0)
	m.Frame(base)
	m.Frame(base.Add(time.Second))
	assert.Equal(t, 0.0, m.Offset())

	track.Measure([]float64{100, 100, 100, 100, 100, 100}, 0)
	m.Frame(base.Add(2 * time.Second))
	assert.Less(t, m.Offset(), 0.0)
}

func TestFrame_LoopInvariant(t *testing.T) {
	const loop = 250.0
	m := New(testItems(5), fixedLoop(loop), Options{Speed: 3.7})
	base := time.Unix(1000, 0)
	for i := 0; i < 500; i++ {
		m.Frame(base.Add(time.Duration(i) * 17 * time.Millisecond))
		require.LessOrEqual(t, m.Offset(), 0.0)
		require.Greater(t, m.Offset(), -loop)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		loop   float64
		want   float64
	}{
		{"inside", -10, 100, -10},
		{"zero", 0, 100, 0},
		{"exact boundary", -100, 100, 0},
		{"past boundary", -130, 100, -30},
		{"several loops", -1030, 100, -30},
		{"positive", 30, 100, -70},
		{"unmeasured", -500, 0, -500},
		{"negative loop", -500, -1, -500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Normalize(tt.offset, tt.loop), 1e-9)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, off := range []float64{0, -0.5, -99.999, -100, -250, -12345.6, 42} {
		once := Normalize(off, 100)
		assert.Equal(t, once, Normalize(once, 100), "offset %v", off)
	}
}

func TestDrag_Clamp(t *testing.T) {
	geo := fixedLoop(1000)

	m := New(testItems(4), geo, DefaultOptions())
	m.offset = -5
	m.PressStart(0, 0)
	assert.True(t, m.PressMove(110, 0)) // -5 + 55 = +50
	assert.Equal(t, 0.0, m.Offset())

	m = New(testItems(4), geo, DefaultOptions())
	m.offset = -5
	m.PressStart(3000, 0)
	assert.True(t, m.PressMove(910, 0)) // -5 - 1045 = -1050
	assert.Equal(t, -999.0, m.Offset())
}

func TestDrag_VerticalGestureIgnored(t *testing.T) {
	m := New(testItems(4), fixedLoop(1000), DefaultOptions())
	m.offset = -200
	m.PressStart(100, 100)
	assert.False(t, m.PressMove(110, 160))
	assert.Equal(t, -200.0, m.Offset())
	assert.True(t, m.PressMove(150, 165))
	assert.Equal(t, -180.0, m.Offset())
}

func TestDrag_SuspendsDriver(t *testing.T) {
	m := New(testItems(4), fixedLoop(1000), DefaultOptions())
	base := time.Unix(1000, 0)
	m.Frame(base)
	m.PressStart(10, 10)
	m.Frame(base.Add(500 * time.Millisecond))
	assert.Equal(t, 0.0, m.Offset())
	assert.Equal(t, Suspended, m.State())

	m.PressEnd()
	assert.False(t, m.Dragging())
	m.Frame(base.Add(time.Second))
	assert.Equal(t, Running, m.State())
	assert.Equal(t, 0.0, m.Offset())
}

func TestDrag_EndWrapsImmediately(t *testing.T) {
	var track Track
	track.Measure([]float64{500, 500}, 0)
	m := New(testItems(1), &track, DefaultOptions())
	m.offset = -499
	m.PressStart(0, 0)
	track.Measure([]float64{200, 200}, 0) // layout shrank mid-drag
	m.PressEnd()
	assert.Equal(t, -99.0, m.Offset())
}

func TestTapGuard(t *testing.T) {
	m := New(testItems(3), fixedLoop(1000), DefaultOptions())
	clicks := 0
	m.OnClick = func() { clicks++ }

	m.ItemDown(1, 100, 100)
	assert.True(t, m.ItemClick(1, 105, 102))
	assert.Equal(t, 1, clicks)

	m.ItemDown(1, 100, 100)
	assert.False(t, m.ItemClick(1, 140, 100))
	assert.Equal(t, 1, clicks)

	m.ItemDown(2, 100, 100)
	assert.False(t, m.ItemClick(2, 100, 111))
	assert.Equal(t, 1, clicks)

	assert.False(t, m.ItemClick(99, 0, 0))
}

func TestHover_ItemToItemNeverResumes(t *testing.T) {
	m := New(testItems(5), fixedLoop(1e6), DefaultOptions())
	base := time.Unix(1000, 0)
	m.Frame(base)
	m.Frame(base.Add(10 * time.Millisecond))

	var active []int
	m.OnActiveChange = func(i int) { active = append(active, i) }

	m.EnterStrip()
	m.EnterItem(2)
	m.Frame(base.Add(20 * time.Millisecond))
	held := m.Offset()

	m.LeaveItem(2)
	m.EnterItem(3)
	m.Frame(base.Add(30 * time.Millisecond))
	assert.Equal(t, held, m.Offset())
	assert.Equal(t, Suspended, m.State())
	assert.Equal(t, []int{2, -1, 3}, active)
}

func TestHover_LeaveStripWhileItemHovered(t *testing.T) {
	m := New(testItems(3), fixedLoop(1e6), DefaultOptions())
	m.EnterStrip()
	m.EnterItem(4)
	m.LeaveStrip()
	assert.True(t, m.Suspended())
	assert.Equal(t, 1, m.ActiveIndex())

	m.LeaveItem(4)
	assert.False(t, m.Suspended())
	assert.Equal(t, -1, m.ActiveIndex())
}

func TestHover_StaleLeaveKeepsCurrent(t *testing.T) {
	m := New(testItems(3), fixedLoop(1e6), DefaultOptions())
	m.EnterItem(1)
	m.EnterItem(2)
	m.LeaveItem(1)
	assert.Equal(t, 2, m.HoveredItem())
}

func TestCards(t *testing.T) {
	m := New(testItems(3), fixedLoop(1000), DefaultOptions())
	m.EnterItem(4)
	cards := m.Cards()
	require.Len(t, cards, 6)
	assert.Equal(t, "01", cards[0].Label)
	assert.Equal(t, "03", cards[2].Label)
	assert.Equal(t, "02", cards[4].Label)
	assert.False(t, cards[4].Desaturated)
	assert.Equal(t, HoverScale, cards[4].Scale)
	assert.True(t, cards[1].Desaturated)
	assert.Equal(t, 1.0, cards[1].Scale)
}

func TestCardFor_LabelPadding(t *testing.T) {
	assert.Equal(t, "12", CardFor(Item{}, false, 23, 12).Label)
	assert.Equal(t, "09", CardFor(Item{}, false, 8, 12).Label)
}

func TestSetItems_RebuildsOnlyOnChange(t *testing.T) {
	items := testItems(3)
	m := New(items, fixedLoop(1000), DefaultOptions())
	m.offset = -40
	m.SetItems(testItems(3))
	assert.Equal(t, -40.0, m.Offset())

	m.SetItems(testItems(4))
	assert.Equal(t, 0.0, m.Offset())
	assert.Len(t, m.Sequence(), 8)
}

func TestAttachAndClose(t *testing.T) {
	host := &fakeHost{}
	m := New(testItems(2), fixedLoop(1e6), DefaultOptions())
	m.Attach(host)
	base := time.Unix(1000, 0)
	host.tick(base)
	host.tick(base.Add(100 * time.Millisecond))
	moved := m.Offset()
	assert.Less(t, moved, 0.0)

	m.Close()
	assert.Equal(t, 1, host.cancelled)
	host.tick(base.Add(time.Second))
	assert.Equal(t, moved, m.Offset())

	m.Close() // second close is a no-op
	assert.Equal(t, 1, host.cancelled)
}

func TestTrack(t *testing.T) {
	var tr Track
	_, ok := tr.LoopDistance()
	assert.False(t, ok)

	tr.Measure([]float64{100, 150, 100, 150}, 10)
	w, ok := tr.LoopDistance()
	assert.True(t, ok)
	assert.Equal(t, 270.0, w)
	assert.Equal(t, 540.0, tr.Width())

	tr.Reset()
	_, ok = tr.LoopDistance()
	assert.False(t, ok)
}

func TestOptions_Defaults(t *testing.T) {
	m := New(nil, fixedLoop(0), Options{})
	assert.Equal(t, DefaultOptions(), m.Options())
	assert.Empty(t, m.Sequence())
	assert.Equal(t, -1, m.ActiveIndex())
}
