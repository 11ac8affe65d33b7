package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/shutterfolio/internal/carousel"
	"github.com/depeter/shutterfolio/internal/motion"
)

const defaultCardAspect = 0.75

// MarqueeView draws a carousel.Marquee as a strip of photo cards and maps
// pointer input onto it.
type MarqueeView struct {
	theme  *Theme
	images *Images

	Marquee *carousel.Marquee
	track   *carousel.Track

	rect   motion.Rect
	widths []float64
	cards  []motion.Rect

	stripHovered bool
	hoveredCard  int
	pressing     bool
	pressCard    int
}

// NewMarqueeView builds the view and its marquee. The marquee is measured
// by the view's own track, so it holds still until the first layout.
func NewMarqueeView(theme *Theme, images *Images, items []carousel.Item, opts carousel.Options) *MarqueeView {
	track := &carousel.Track{}
	return &MarqueeView{
		theme:       theme,
		images:      images,
		Marquee:     carousel.New(items, track, opts),
		track:       track,
		hoveredCard: -1,
		pressCard:   -1,
	}
}

// CardHeight is responsive to the window height.
func (v *MarqueeView) CardHeight() float64 {
	h := ScreenHeight * 0.45
	if h < 240 {
		h = 240
	}
	if h > 520 {
		h = 520
	}
	return h
}

// Height is the strip height including the hover growth margin.
func (v *MarqueeView) Height() float64 {
	return v.CardHeight()*carousel.HoverScale + 32
}

// Layout places the strip at (x, y) with width w, measures card widths from
// the loaded images and positions each card at the current offset.
func (v *MarqueeView) Layout(x, y, w float64) {
	v.rect = motion.Rect{X: x, Y: y, W: w, H: v.Height()}
	seq := v.Marquee.Sequence()
	ch := v.CardHeight()

	if cap(v.widths) < len(seq) {
		v.widths = make([]float64, len(seq))
	}
	widths := v.widths[:len(seq)]
	changed := len(widths) != len(v.widths) || v.track.Width() == 0
	for i, it := range seq {
		cw := ch * v.images.Aspect(it.Image, defaultCardAspect)
		if widths[i] != cw {
			widths[i] = cw
			changed = true
		}
	}
	v.widths = widths
	if changed {
		if len(widths) == 0 {
			v.track.Reset()
		} else {
			v.track.Measure(widths, MarqueeGap)
		}
	}

	if cap(v.cards) < len(seq) {
		v.cards = make([]motion.Rect, len(seq))
	}
	v.cards = v.cards[:len(seq)]
	cx := x + v.Marquee.Offset()
	cy := y + (v.rect.H-ch)/2
	for i := range seq {
		v.cards[i] = motion.Rect{X: cx, Y: cy, W: widths[i], H: ch}
		cx += widths[i] + MarqueeGap
	}
}

func (v *MarqueeView) cardAt(x, y float64) int {
	for i, r := range v.cards {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Update routes pointer input. It returns true while a horizontal drag owns
// the pointer, so the page must not scroll for it.
func (v *MarqueeView) Update(p *Pointer) bool {
	m := v.Marquee
	inStrip := v.rect.Contains(p.X, p.Y)
	card := -1
	if inStrip {
		card = v.cardAt(p.X, p.Y)
	}

	hoverStrip := inStrip && p.Hovering()
	if hoverStrip != v.stripHovered {
		if hoverStrip {
			m.EnterStrip()
		} else {
			m.LeaveStrip()
		}
		v.stripHovered = hoverStrip
	}
	hoverCard := card
	if !p.Hovering() {
		hoverCard = -1
	}
	if hoverCard != v.hoveredCard {
		if v.hoveredCard >= 0 {
			m.LeaveItem(v.hoveredCard)
		}
		if hoverCard >= 0 {
			m.EnterItem(hoverCard)
		}
		v.hoveredCard = hoverCard
	}

	captured := false
	if p.JustPressed && inStrip {
		v.pressing = true
		v.pressCard = card
		m.PressStart(p.X, p.Y)
		if card >= 0 {
			m.ItemDown(card, p.X, p.Y)
		}
	}
	if v.pressing && p.Pressed {
		captured = m.PressMove(p.X, p.Y)
	}
	if v.pressing && p.JustReleased {
		m.PressEnd()
		if card >= 0 && card == v.pressCard {
			m.ItemClick(card, p.X, p.Y)
		}
		v.pressing = false
		v.pressCard = -1
	}
	return captured
}

// Release drops any hover and press state, e.g. when a dialog opens above.
func (v *MarqueeView) Release() {
	if v.pressing {
		v.Marquee.PressEnd()
		v.pressing = false
	}
	if v.hoveredCard >= 0 {
		v.Marquee.LeaveItem(v.hoveredCard)
		v.hoveredCard = -1
	}
	if v.stripHovered {
		v.Marquee.LeaveStrip()
		v.stripHovered = false
	}
}

func (v *MarqueeView) Draw(dst *ebiten.Image) {
	pal := v.theme.Palette()
	clip := image.Rect(int(v.rect.X), int(v.rect.Y), int(v.rect.X+v.rect.W), int(v.rect.Y+v.rect.H)).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	strip := dst.SubImage(clip).(*ebiten.Image)

	cards := v.Marquee.Cards()
	hovered := -1
	for i, c := range cards {
		if i >= len(v.cards) {
			break
		}
		if c.Scale != 1 {
			hovered = i
			continue
		}
		v.drawCard(strip, c, v.cards[i], pal)
	}
	// The hovered card grows over its neighbours, so it goes last.
	if hovered >= 0 && hovered < len(v.cards) {
		v.drawCard(strip, cards[hovered], v.cards[hovered], pal)
	}
}

func (v *MarqueeView) drawCard(dst *ebiten.Image, c carousel.Card, r motion.Rect, pal Palette) {
	if r.X > v.rect.X+v.rect.W || r.X+r.W < v.rect.X {
		return
	}
	if c.Scale != 1 {
		cx, cy := r.Center()
		r = motion.Rect{W: r.W * c.Scale, H: r.H * c.Scale}
		r.X, r.Y = cx-r.W/2, cy-r.H/2
	}

	if img := v.images.Get(c.Item.Image); img != nil {
		drawCover(dst, img, r, c.Desaturated, 1)
	} else {
		drawPlaceholder(dst, r, pal, c.Item.Title)
	}
	if c.Desaturated {
		fillRect(dst, r, withAlpha(pal.Background, 0.25))
	} else {
		strokeRect(dst, r, 2, pal.Primary)
	}

	DrawHeading(dst, c.Label, r.X+14, r.Y+12, FontSizeSmall, pal.Text)
	if !c.Desaturated {
		band := motion.Rect{X: r.X, Y: r.Y + r.H - 64, W: r.W, H: 64}
		fillRect(dst, band, withAlpha(pal.Background, 0.7))
		DrawHeading(dst, truncateText(c.Item.Title, r.W-28, FontSizeBody), r.X+14, band.Y+12, FontSizeBody, pal.Text)
		DrawText(dst, c.Item.Category, r.X+14, band.Y+38, FontSizeCaption, pal.Primary)
	}
}
