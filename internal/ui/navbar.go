package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/shutterfolio/internal/motion"
)

// NavLink is one section link in the navbar.
type NavLink struct {
	Label   string
	Section string
}

// NavBar is the fixed bar across the top of the home page: brand on the
// left, section links and the theme toggle on the right.
type NavBar struct {
	theme *Theme
	Links []NavLink
	// Active is the section currently under the navbar, highlighted.
	Active string

	// OnNavigate receives the section to scroll to. The brand navigates
	// to "top".
	OnNavigate func(section string)

	brandRect  motion.Rect
	linkRects  []motion.Rect
	toggleRect motion.Rect
	hovered    int // link index, -2 for the toggle, -3 for the brand
	// solid fades the background in once the page has scrolled past the hero.
	solid float64
}

const (
	navHoverNone   = -1
	navHoverToggle = -2
	navHoverBrand  = -3
)

func NewNavBar(theme *Theme) *NavBar {
	return &NavBar{
		theme: theme,
		Links: []NavLink{
			{Label: "Work", Section: "portfolio"},
			{Label: "About", Section: "about"},
			{Label: "Services", Section: "services"},
			{Label: "Contact", Section: "contact"},
		},
		hovered: navHoverNone,
	}
}

// SetScrolled sets how far past the hero the page is, in 0..1.
func (nb *NavBar) SetScrolled(v float64) {
	nb.solid = v
}

func (nb *NavBar) layout() {
	nb.brandRect = motion.Rect{X: SectionPadding, Y: 0, W: 220, H: NavBarHeight}
	nb.toggleRect = motion.Rect{X: ScreenWidth - SectionPadding - 40, Y: (NavBarHeight - 40) / 2, W: 40, H: 40}
	if len(nb.linkRects) != len(nb.Links) {
		nb.linkRects = make([]motion.Rect, len(nb.Links))
	}
	x := nb.toggleRect.X - NavBarPadding
	for i := len(nb.Links) - 1; i >= 0; i-- {
		tw, _ := MeasureText(nb.Links[i].Label, FontSizeBody)
		w := tw + 24
		x -= w
		nb.linkRects[i] = motion.Rect{X: x, Y: (NavBarHeight - 40) / 2, W: w, H: 40}
		x -= 8
	}
}

// Update handles hover and clicks and reports whether the pointer is over
// the bar, in which case the page beneath must ignore it.
func (nb *NavBar) Update(p *Pointer) bool {
	nb.layout()
	nb.hovered = navHoverNone
	if p.Y >= NavBarHeight {
		return false
	}
	switch {
	case nb.toggleRect.Contains(p.X, p.Y):
		nb.hovered = navHoverToggle
		if p.Clicked() {
			nb.theme.Toggle()
		}
	case nb.brandRect.Contains(p.X, p.Y):
		nb.hovered = navHoverBrand
		if p.Clicked() && nb.OnNavigate != nil {
			nb.OnNavigate("top")
		}
	default:
		for i, r := range nb.linkRects {
			if !r.Contains(p.X, p.Y) {
				continue
			}
			nb.hovered = i
			if p.Clicked() && nb.OnNavigate != nil {
				nb.OnNavigate(nb.Links[i].Section)
			}
		}
	}
	if !p.Hovering() {
		nb.hovered = navHoverNone
	}
	return true
}

func (nb *NavBar) Draw(dst *ebiten.Image) {
	nb.layout()
	pal := nb.theme.Palette()

	if nb.solid > 0 {
		vector.DrawFilledRect(dst, 0, 0, float32(ScreenWidth), float32(NavBarHeight), withAlpha(pal.Background, 0.92*nb.solid), false)
		vector.DrawFilledRect(dst, 0, float32(NavBarHeight-1), float32(ScreenWidth), 1, withAlpha(pal.SurfaceHover, nb.solid), false)
	}

	brandColor := pal.Text
	if nb.hovered == navHoverBrand {
		brandColor = pal.Primary
	}
	drawApertureIcon(dst, float32(SectionPadding+14), NavBarHeight/2, 13, pal.Primary)
	_, bh := MeasureHeading("Shutterfolio", FontSizeHeading)
	DrawHeading(dst, "Shutterfolio", SectionPadding+38, (NavBarHeight-bh)/2, FontSizeHeading, brandColor)

	for i, link := range nb.Links {
		r := nb.linkRects[i]
		clr := pal.TextSecondary
		switch {
		case link.Section == nb.Active:
			clr = pal.Text
			vector.DrawFilledRect(dst, float32(r.X+12), float32(r.Y+r.H-6), float32(r.W-24), 2, pal.Primary, false)
		case i == nb.hovered:
			clr = pal.Text
		}
		DrawTextCentered(dst, link.Label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, clr)
	}

	tr := nb.toggleRect
	if nb.hovered == navHoverToggle {
		fillRect(dst, tr, pal.SurfaceHover)
	}
	strokeRect(dst, tr, 1, pal.TextMuted)
	cx, cy := tr.Center()
	if nb.theme.Dark() {
		drawSunIcon(dst, float32(cx), float32(cy), 11, pal.Primary)
	} else {
		bg := pal.Background
		if nb.hovered == navHoverToggle {
			bg = pal.SurfaceHover
		}
		drawMoonIcon(dst, float32(cx), float32(cy), 11, pal.Primary, bg)
	}
}
