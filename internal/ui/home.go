package ui

import (
	"fmt"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/depeter/shutterfolio/internal/carousel"
	"github.com/depeter/shutterfolio/internal/contact"
	"github.com/depeter/shutterfolio/internal/content"
	"github.com/depeter/shutterfolio/internal/motion"
)

const (
	heroTitle        = "Moments, framed."
	heroSubtitle     = "Portrait, landscape and documentary photography"
	heroLetterDelay  = 45 * time.Millisecond
	heroLetterFade   = 400 * time.Millisecond
	heroButtonW      = 200.0
	heroButtonH      = 56.0
	serviceCardH     = 240.0
	footerH          = 96.0
	aboutPortraitMax = 520.0
)

// Section names used by the navbar and scroll-to.
const (
	SectionTop       = "top"
	SectionMarquee   = "marquee"
	SectionPortfolio = "portfolio"
	SectionAbout     = "about"
	SectionServices  = "services"
	SectionContact   = "contact"
)

// HomeScreen is the single scrolling page: hero, marquee, portfolio, about,
// services, contact and footer.
type HomeScreen struct {
	theme   *Theme
	images  *Images
	frames  carousel.FrameHost
	catalog *content.Catalog
	logger  *zap.Logger

	nav     *NavBar
	marquee *MarqueeView
	filter  *FilterBar
	grid    *PortfolioGrid
	modal   *ProjectModal
	form    *ContactForm

	scroll  ScrollState
	pointer Pointer

	// page-space y of each section, rebuilt by layout
	sections map[string]float64
	pageH    float64

	enteredAt    time.Time
	active       int
	heroButton   motion.Rect
	heroHovered  bool
	portrait     motion.Rect
	serviceRects []motion.Rect

	heroBG      *ebiten.Image
	heroDirty   atomic.Bool
	unsubscribe func()

	touch motion.TouchScroll
}

func NewHomeScreen(theme *Theme, images *Images, frames carousel.FrameHost, catalog *content.Catalog,
	submitter contact.Submitter, opts carousel.Options, logger *zap.Logger) *HomeScreen {
	if catalog == nil {
		catalog = content.Fallback()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	hs := &HomeScreen{
		theme:    theme,
		images:   images,
		frames:   frames,
		catalog:  catalog,
		logger:   logger,
		nav:      NewNavBar(theme),
		marquee:  NewMarqueeView(theme, images, catalog.MarqueeItems(), opts),
		filter:   NewFilterBar(catalog.Categories()),
		grid:     NewPortfolioGrid(theme, images),
		modal:    NewProjectModal(theme, images),
		form:     NewContactForm(theme, submitter, logger),
		sections: make(map[string]float64),
		active:   -1,
	}
	hs.heroDirty.Store(true)

	hs.nav.OnNavigate = hs.ScrollToSection
	hs.marquee.Marquee.OnClick = func() {
		hs.ScrollToSection(SectionPortfolio)
	}
	hs.marquee.Marquee.OnActiveChange = func(i int) {
		hs.active = i
	}
	hs.filter.OnChanged = func(cat string) {
		hs.grid.SetProjects(hs.catalog.Filter(cat), time.Now())
	}
	hs.grid.OnSelect = func(p content.Project, from motion.Rect) {
		hs.marquee.Release()
		hs.form.Blur()
		hs.modal.Open(p, hs.grid.Projects, from, time.Now())
	}
	hs.grid.SetProjects(catalog.Filter(content.AllCategories), time.Now())
	return hs
}

func (hs *HomeScreen) Name() string { return "Home" }

func (hs *HomeScreen) OnEnter() {
	hs.enteredAt = time.Now()
	hs.grid.SetProjects(hs.grid.Projects, hs.enteredAt)
	if hs.frames != nil {
		hs.marquee.Marquee.Attach(hs.frames)
	}
	// Theme changes may arrive from the config watcher goroutine; only flag
	// the cached background here and rebuild it on the draw thread.
	hs.unsubscribe = hs.theme.Subscribe(func(Palette) {
		hs.heroDirty.Store(true)
	})
}

func (hs *HomeScreen) OnExit() {
	hs.marquee.Marquee.Close()
	if hs.unsubscribe != nil {
		hs.unsubscribe()
		hs.unsubscribe = nil
	}
}

// CapturesKeyboard is true while the contact form is being typed in.
func (hs *HomeScreen) CapturesKeyboard() bool {
	return hs.form.CapturesKeyboard()
}

// Marquee exposes the marquee for the debug overlay.
func (hs *HomeScreen) Marquee() *carousel.Marquee {
	return hs.marquee.Marquee
}

// ScrollToSection smooth-scrolls so the section sits under the navbar.
func (hs *HomeScreen) ScrollToSection(name string) {
	y, ok := hs.sections[name]
	if !ok {
		return
	}
	if name != SectionTop {
		y -= NavBarHeight
	}
	hs.scroll.ScrollTo(y)
}

// layout positions every section in screen space for the current scroll
// and records each section's page-space y.
func (hs *HomeScreen) layout() {
	x := float64(SectionPadding)
	w := ScreenWidth - SectionPadding*2
	top := -hs.scroll.ScrollY
	y := 0.0

	hs.sections[SectionTop] = y
	hs.heroButton = motion.Rect{X: x, Y: top + ScreenHeight*0.62, W: heroButtonW, H: heroButtonH}
	y += ScreenHeight

	hs.sections[SectionMarquee] = y
	y += SectionTitleH
	hs.marquee.Layout(0, top+y, ScreenWidth)
	y += hs.marquee.Height() + FontSizeBody*2 + SectionGap

	hs.sections[SectionPortfolio] = y
	y += SectionTitleH + filterBarHeight + 32
	y += hs.grid.Layout(x, top+y, w) + SectionGap

	hs.sections[SectionAbout] = y
	y += SectionTitleH
	textW := w * 0.55
	aboutH := WrappedHeight(hs.catalog.About.Bio, textW, FontSizeBody) + FontSizeHeading*2 + 140
	pw := w - textW - 48
	if pw > aboutPortraitMax {
		pw = aboutPortraitMax
	}
	ph := pw / hs.images.Aspect(hs.catalog.About.Portrait, gridTileAspect)
	hs.portrait = motion.Rect{X: x + w - pw, Y: top + y, W: pw, H: ph}
	if ph > aboutH {
		aboutH = ph
	}
	y += aboutH + SectionGap

	hs.sections[SectionServices] = y
	y += SectionTitleH
	cols := 3
	if n := len(hs.catalog.Services); n < cols && n > 0 {
		cols = n
	}
	if ScreenWidth < 900 {
		cols = 1
	}
	cardW := (w - gridGap*float64(cols-1)) / float64(cols)
	hs.serviceRects = hs.serviceRects[:0]
	for i := range hs.catalog.Services {
		row, col := i/cols, i%cols
		hs.serviceRects = append(hs.serviceRects, motion.Rect{
			X: x + float64(col)*(cardW+gridGap),
			Y: top + y + float64(row)*(serviceCardH+gridGap),
			W: cardW,
			H: serviceCardH,
		})
	}
	rows := (len(hs.catalog.Services) + cols - 1) / cols
	y += float64(rows)*(serviceCardH+gridGap) + SectionGap

	hs.sections[SectionContact] = y
	y += SectionTitleH + 64
	formW := w
	if formW > 880 {
		formW = 880
	}
	y += hs.form.Layout(x, top+y, formW) + SectionGap/2

	hs.sections["footer"] = y
	y += footerH

	hs.pageH = y
	hs.scroll.MaxScrollY = y - ScreenHeight
	if hs.scroll.MaxScrollY < 0 {
		hs.scroll.MaxScrollY = 0
	}
}

// activeSection is the last section that has reached the navbar.
func (hs *HomeScreen) activeSection() string {
	probe := hs.scroll.ScrollY + NavBarHeight + 1
	active := ""
	best := -1.0
	for _, link := range hs.nav.Links {
		y, ok := hs.sections[link.Section]
		if ok && y <= probe && y > best {
			active, best = link.Section, y
		}
	}
	return active
}

func (hs *HomeScreen) Update() (*ScreenTransition, error) {
	now := time.Now()
	hs.pointer.Update()
	p := &hs.pointer

	if hs.modal.Visible() {
		hs.modal.Update(p, now)
		hs.scroll.Animate()
		hs.layout()
		return nil, nil
	}

	hs.scroll.Animate()
	hs.layout()

	hs.nav.Active = hs.activeSection()
	hs.nav.SetScrolled(motion.EaseOutCubic(hs.scroll.ScrollY / (ScreenHeight * 0.5)))
	if hs.nav.Update(p) {
		hs.marquee.Release()
		return nil, nil
	}

	captured := hs.marquee.Update(p)

	if !hs.CapturesKeyboard() {
		hs.handleKeys()
	}
	hs.handleTouchScroll(p, captured)
	if !captured {
		hs.scroll.HandleMouseWheel()
	}
	if captured || hs.touch.Scrolling() {
		return nil, nil
	}

	hs.heroHovered = hs.heroButton.Contains(p.X, p.Y) && p.Hovering()
	if p.Clicked() && hs.heroButton.Contains(p.X, p.Y) {
		hs.ScrollToSection(SectionPortfolio)
		return nil, nil
	}
	if hs.filter.Update(p) {
		return nil, nil
	}
	if hs.grid.Update(p) {
		return nil, nil
	}
	hs.form.Update(p)
	return nil, nil
}

func (hs *HomeScreen) handleKeys() {
	switch {
	case inputRepeating(ebiten.KeyArrowDown):
		hs.scroll.ScrollBy(ScrollWheelSpeed)
	case inputRepeating(ebiten.KeyArrowUp):
		hs.scroll.ScrollBy(-ScrollWheelSpeed)
	case inputRepeating(ebiten.KeyPageDown), inputRepeating(ebiten.KeySpace):
		hs.scroll.ScrollBy(ScreenHeight - NavBarHeight)
	case inputRepeating(ebiten.KeyPageUp):
		hs.scroll.ScrollBy(-(ScreenHeight - NavBarHeight))
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		hs.scroll.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		hs.scroll.ScrollTo(hs.scroll.MaxScrollY)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		hs.filter.Cycle(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		hs.filter.Cycle(-1)
	}
}

// handleTouchScroll drags the page with a finger. A vertical move past the
// tap slop turns the touch into a scroll so it does not also click. Once the
// marquee has taken the touch for a horizontal drag the page stays put.
func (hs *HomeScreen) handleTouchScroll(p *Pointer, captured bool) {
	if !p.Touch {
		hs.touch.Reset()
		return
	}
	hs.touch.Slop = hs.marquee.Marquee.Options().TapThreshold
	switch {
	case p.JustPressed:
		hs.touch.Press(p.Y)
	case p.Pressed && captured:
		hs.touch.Claim(p.Y)
	case p.Pressed:
		if dy := hs.touch.Move(p.Y); dy != 0 {
			hs.scroll.Jump(hs.scroll.ScrollY - dy)
		}
	case p.JustReleased:
		// Keep the state for this frame so the release does not click.
	default:
		hs.touch.Reset()
	}
}

func (hs *HomeScreen) Draw(dst *ebiten.Image) {
	now := time.Now()
	pal := hs.theme.Palette()
	top := -hs.scroll.ScrollY
	x := float64(SectionPadding)
	w := ScreenWidth - SectionPadding*2

	hs.drawHero(dst, pal, now, top)

	y := top + hs.sections[SectionMarquee]
	hs.drawSectionTitle(dst, pal, "01", "Selected work", x, y)
	hs.marquee.Draw(dst)
	caption := "Drag to explore. Tap a photo to see the full portfolio."
	if hs.active >= 0 && hs.active < len(hs.marquee.Marquee.Items()) {
		it := hs.marquee.Marquee.Items()[hs.active]
		caption = fmt.Sprintf("%s · %s", it.Title, it.Category)
	}
	DrawText(dst, caption, x, y+SectionTitleH+hs.marquee.Height()+8, FontSizeSmall, pal.TextSecondary)

	y = top + hs.sections[SectionPortfolio]
	hs.drawSectionTitle(dst, pal, "02", "Portfolio", x, y)
	hs.filter.Draw(dst, pal, x, y+SectionTitleH)
	hs.grid.Draw(dst, now)

	hs.drawAbout(dst, pal, x, top+hs.sections[SectionAbout], w)
	hs.drawServices(dst, pal, x, top+hs.sections[SectionServices])

	y = top + hs.sections[SectionContact]
	hs.drawSectionTitle(dst, pal, "05", "Get in touch", x, y)
	DrawText(dst, "Commissions, prints, collaborations. Tell me about your project.", x, y+SectionTitleH+8, FontSizeBody, pal.TextSecondary)
	hs.form.Draw(dst)

	hs.drawFooter(dst, pal, top+hs.sections["footer"])

	hs.nav.Draw(dst)
	hs.modal.Draw(dst, now)
}

func (hs *HomeScreen) drawSectionTitle(dst *ebiten.Image, pal Palette, num, title string, x, y float64) {
	if y > ScreenHeight || y+SectionTitleH < 0 {
		return
	}
	DrawText(dst, num, x, y+10, FontSizeSmall, pal.Primary)
	DrawHeading(dst, title, x+36, y, FontSizeTitle, pal.Text)
}

// rebuildHeroBG renders the vertical hero gradient into a one pixel wide
// strip that Draw stretches across the screen.
func (hs *HomeScreen) rebuildHeroBG(pal Palette) {
	const h = 256
	if hs.heroBG == nil {
		hs.heroBG = ebiten.NewImage(1, h)
	}
	pix := make([]byte, 4*h)
	from, to := pal.Surface, pal.Background
	for i := 0; i < h; i++ {
		t := float64(i) / (h - 1)
		c := color.RGBA{
			R: uint8(motion.Lerp(float64(from.R), float64(to.R), t)),
			G: uint8(motion.Lerp(float64(from.G), float64(to.G), t)),
			B: uint8(motion.Lerp(float64(from.B), float64(to.B), t)),
			A: 0xFF,
		}
		pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = c.R, c.G, c.B, c.A
	}
	hs.heroBG.WritePixels(pix)
}

func (hs *HomeScreen) drawHero(dst *ebiten.Image, pal Palette, now time.Time, top float64) {
	if top+ScreenHeight < 0 {
		return
	}
	if hs.heroDirty.Swap(false) || hs.heroBG == nil {
		hs.rebuildHeroBG(pal)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(ScreenWidth, ScreenHeight/256)
	op.GeoM.Translate(0, top)
	dst.DrawImage(hs.heroBG, op)

	x := float64(SectionPadding)
	y := top + ScreenHeight*0.34
	elapsed := now.Sub(hs.enteredAt)

	// Letters fade and rise in one after another.
	cx := x
	for i, r := range []rune(heroTitle) {
		ch := string(r)
		t := motion.EaseOutCubic(float64(elapsed-time.Duration(i)*heroLetterDelay) / float64(heroLetterFade))
		if t > 0 {
			DrawHeading(dst, ch, cx, y+(1-t)*24, FontSizeDisplay, withAlpha(pal.Text, t))
		}
		cw, _ := MeasureHeading(ch, FontSizeDisplay)
		cx += cw
	}

	after := time.Duration(len([]rune(heroTitle)))*heroLetterDelay + heroLetterFade/2
	a := motion.EaseOutCubic(float64(elapsed-after) / float64(heroLetterFade))
	DrawText(dst, heroSubtitle, x, y+FontSizeDisplay*1.4, FontSizeHeading, withAlpha(pal.TextSecondary, a))
	if a > 0 {
		b := hs.heroButton
		drawButton(dst, pal, "View work", b.X, b.Y, b.W, b.H, true, hs.heroHovered)
	}

	// Scroll hint
	if hs.scroll.ScrollY < 8 {
		pulse := 0.5 + 0.5*motion.EaseInOutCubic(float64(elapsed%(1600*time.Millisecond))/float64(1600*time.Millisecond))
		DrawTextCentered(dst, "scroll", ScreenWidth/2, top+ScreenHeight-48, FontSizeCaption, withAlpha(pal.TextMuted, a*pulse))
	}
}

func (hs *HomeScreen) drawAbout(dst *ebiten.Image, pal Palette, x, y, w float64) {
	about := hs.catalog.About
	hs.drawSectionTitle(dst, pal, "03", "About", x, y)
	if y > ScreenHeight || y+hs.portrait.H+SectionTitleH < 0 {
		return
	}
	y += SectionTitleH
	textW := w * 0.55

	DrawHeading(dst, about.Headline, x, y, FontSizeHeading, pal.Text)
	y += FontSizeHeading * 2
	y += DrawTextWrapped(dst, about.Bio, x, y, textW, FontSizeBody, pal.TextSecondary) + 40

	if len(about.Stats) > 0 {
		colW := textW / float64(len(about.Stats))
		for i, st := range about.Stats {
			sx := x + float64(i)*colW
			DrawHeading(dst, st.Value, sx, y, FontSizeTitle, pal.Primary)
			DrawText(dst, st.Label, sx, y+FontSizeTitle*1.3, FontSizeSmall, pal.TextMuted)
		}
	}

	if img := hs.images.Get(about.Portrait); img != nil {
		drawCover(dst, img, hs.portrait, false, 1)
	} else if !hs.portrait.Empty() {
		drawPlaceholder(dst, hs.portrait, pal, "Portrait")
	}
}

func (hs *HomeScreen) drawServices(dst *ebiten.Image, pal Palette, x, y float64) {
	hs.drawSectionTitle(dst, pal, "04", "Services", x, y)
	for i, r := range hs.serviceRects {
		if r.Y > ScreenHeight || r.Y+r.H < 0 {
			continue
		}
		s := hs.catalog.Services[i]
		fillRect(dst, r, pal.Surface)
		strokeRect(dst, r, 1, pal.SurfaceHover)
		DrawHeading(dst, truncateText(s.Title, r.W-56, FontSizeHeading), r.X+28, r.Y+28, FontSizeHeading, pal.Text)
		DrawTextWrapped(dst, s.Description, r.X+28, r.Y+28+FontSizeHeading*1.8, r.W-56, FontSizeBody, pal.TextSecondary)
		if s.Price != "" {
			DrawText(dst, s.Price, r.X+28, r.Y+r.H-28-FontSizeBody, FontSizeBody, pal.Primary)
		}
	}
}

func (hs *HomeScreen) drawFooter(dst *ebiten.Image, pal Palette, y float64) {
	if y > ScreenHeight {
		return
	}
	fillRect(dst, motion.Rect{X: 0, Y: y, W: ScreenWidth, H: 1}, pal.SurfaceHover)
	left := fmt.Sprintf("© %d Shutterfolio", time.Now().Year())
	DrawText(dst, left, SectionPadding, y+footerH/2-FontSizeSmall/2, FontSizeSmall, pal.TextMuted)
	right := "Press T to switch theme"
	rw, _ := MeasureText(right, FontSizeSmall)
	DrawText(dst, right, ScreenWidth-SectionPadding-rw, y+footerH/2-FontSizeSmall/2, FontSizeSmall, pal.TextMuted)
}
