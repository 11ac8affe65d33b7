package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/depeter/shutterfolio/internal/contact"
	"github.com/depeter/shutterfolio/internal/motion"
)

type formState int

const (
	formIdle formState = iota
	formSending
	formSent
	formFailed
)

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldBody
	fieldCount
)

const (
	formFieldH  = 48.0
	formBodyH   = 168.0
	formLabelH  = 24.0
	formRowGap  = 20.0
	formButtonW = 200.0
	formButtonH = 52.0
)

var formLabels = [fieldCount]string{"Name", "Email", "Subject (optional)", "Message"}

// ContactForm is the four-field contact form. Submission runs on its own
// goroutine; the result is picked up on the next Update.
type ContactForm struct {
	theme     *Theme
	submitter contact.Submitter
	logger    *zap.Logger

	fields  [fieldCount]TextInput
	rects   [fieldCount]motion.Rect
	button  motion.Rect
	focus   int // -1 when no field has focus
	hovered bool
	status  StatusDisplay

	mu      sync.Mutex
	state   formState
	message string
}

func NewContactForm(theme *Theme, submitter contact.Submitter, logger *zap.Logger) *ContactForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &ContactForm{theme: theme, submitter: submitter, logger: logger, focus: -1}
	f.fields[fieldName].MaxLen = 120
	f.fields[fieldEmail].MaxLen = 254
	f.fields[fieldSubject].MaxLen = 160
	f.fields[fieldBody].MaxLen = contact.MaxBodyLength
	return f
}

// CapturesKeyboard is true while a field has focus, so global keybinds
// stay out of the way of typing.
func (f *ContactForm) CapturesKeyboard() bool {
	return f.focus >= 0
}

// Blur drops keyboard focus.
func (f *ContactForm) Blur() {
	f.focus = -1
}

// Message builds the submission from the current field contents.
func (f *ContactForm) Message() contact.Message {
	return contact.Message{
		Name:    f.fields[fieldName].Text,
		Email:   f.fields[fieldEmail].Text,
		Subject: f.fields[fieldSubject].Text,
		Body:    f.fields[fieldBody].Text,
	}.Normalize()
}

func (f *ContactForm) snapshot() (formState, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.message
}

func (f *ContactForm) setState(s formState, msg string) {
	f.mu.Lock()
	f.state = s
	f.message = msg
	f.mu.Unlock()
}

// Submit validates the fields and, if they pass, sends them in the
// background. Invalid input is reported without sending.
func (f *ContactForm) Submit() {
	if st, _ := f.snapshot(); st == formSending {
		return
	}
	msg := f.Message()
	if err := msg.Validate(); err != nil {
		f.setState(formFailed, validationText(err))
		return
	}
	f.setState(formSending, "")
	f.focus = -1

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := f.submitter.Submit(ctx, msg); err != nil {
			f.logger.Warn("contact submit failed", zap.Error(err))
			f.setState(formFailed, "Sorry, your message could not be sent. Please try again.")
			return
		}
		f.logger.Info("contact message sent", zap.String("email", msg.Email))
		f.setState(formSent, "Thanks! Your message is on its way. I'll reply within two days.")
	}()
}

// validationText turns joined validation errors into one line each.
func validationText(err error) string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var lines []string
		for _, e := range joined.Unwrap() {
			lines = append(lines, capitalize(e.Error()))
		}
		return strings.Join(lines, "\n")
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Layout positions the fields from (x, y) across width w and returns the
// form height.
func (f *ContactForm) Layout(x, y, w float64) float64 {
	half := (w - formRowGap) / 2
	cy := y + formLabelH
	f.rects[fieldName] = motion.Rect{X: x, Y: cy, W: half, H: formFieldH}
	f.rects[fieldEmail] = motion.Rect{X: x + half + formRowGap, Y: cy, W: half, H: formFieldH}
	cy += formFieldH + formRowGap + formLabelH
	f.rects[fieldSubject] = motion.Rect{X: x, Y: cy, W: w, H: formFieldH}
	cy += formFieldH + formRowGap + formLabelH
	f.rects[fieldBody] = motion.Rect{X: x, Y: cy, W: w, H: formBodyH}
	cy += formBodyH + formRowGap
	f.button = motion.Rect{X: x, Y: cy, W: formButtonW, H: formButtonH}
	cy += formButtonH + formRowGap
	return cy - y + FontSizeSmall*1.6*4
}

// Update handles focus, typing and the submit button. It reports whether
// the pointer interacted with the form.
func (f *ContactForm) Update(p *Pointer) bool {
	consumed := false
	if f.status.HandleClick(p) {
		if st, _ := f.snapshot(); st != formSending {
			f.setState(formIdle, "")
		}
		return true
	}

	f.hovered = f.button.Contains(p.X, p.Y) && p.Hovering()
	if p.Clicked() {
		f.focus = -1
		for i, r := range f.rects {
			if r.Contains(p.X, p.Y) {
				f.focus = i
				f.fields[i].Cursor = len([]rune(f.fields[i].Text))
				consumed = true
			}
		}
		if f.button.Contains(p.X, p.Y) {
			f.Submit()
			consumed = true
		}
	}

	if f.focus < 0 {
		return consumed
	}
	field := &f.fields[f.focus]
	if field.Update() {
		if st, _ := f.snapshot(); st == formFailed || st == formSent {
			f.setState(formIdle, "")
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		f.focus = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			f.focus = (f.focus + fieldCount - 1) % fieldCount
		} else {
			f.focus = (f.focus + 1) % fieldCount
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		switch {
		case IsModifierPressed():
			f.Submit()
		case f.focus == fieldBody:
			field.insertAtCursor("\n")
		default:
			f.focus++
		}
	}

	// A successful send clears the form.
	if st, _ := f.snapshot(); st == formSent {
		for i := range f.fields {
			if f.fields[i].Text != "" {
				f.fields[i].Clear()
			}
		}
	}
	return consumed
}

func (f *ContactForm) Draw(dst *ebiten.Image) {
	pal := f.theme.Palette()
	state, msg := f.snapshot()

	for i, r := range f.rects {
		DrawText(dst, formLabels[i], r.X, r.Y-formLabelH, FontSizeSmall, pal.TextSecondary)
		fillRect(dst, r, pal.Surface)
		if i == f.focus {
			strokeRect(dst, r, 2, pal.FocusBorder)
		} else {
			strokeRect(dst, r, 1, pal.TextMuted)
		}
		txt := f.fields[i].Text
		if i == f.focus {
			txt = f.fields[i].DisplayText()
		}
		if i == fieldBody {
			DrawTextWrapped(dst, txt, r.X+14, r.Y+14, r.W-28, FontSizeBody, pal.Text)
		} else {
			DrawText(dst, truncateText(txt, r.W-28, FontSizeBody), r.X+14, r.Y+(r.H-FontSizeBody*1.2)/2, FontSizeBody, pal.Text)
		}
	}

	b := f.button
	if state == formSending {
		fillRect(dst, b, pal.SurfaceHover)
		DrawTextCentered(dst, "Sending…", b.X+b.W/2, b.Y+b.H/2, FontSizeBody, pal.TextSecondary)
	} else {
		drawButton(dst, pal, "Send message", b.X, b.Y, b.W, b.H, true, f.hovered)
	}

	f.status.Draw(dst, pal, msg, state == formFailed, b.X, b.Y+b.H+formRowGap)
}
