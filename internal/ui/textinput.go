package ui

import (
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TextInput handles text editing with cursor navigation.
type TextInput struct {
	Text   string
	Cursor int // rune position within Text
	// MaxLen caps the rune count. Zero means unlimited.
	MaxLen int
}

// SetText replaces the text and moves cursor to the end.
func (ti *TextInput) SetText(text string) {
	ti.Text = text
	ti.Cursor = utf8.RuneCountInString(text)
}

// Clear resets the text and cursor.
func (ti *TextInput) Clear() {
	ti.Text = ""
	ti.Cursor = 0
}

// Update processes input events. Returns true if the text changed.
func (ti *TextInput) Update() bool {
	changed := false
	runeCount := utf8.RuneCountInString(ti.Text)

	if inputRepeating(ebiten.KeyArrowLeft) && ti.Cursor > 0 {
		ti.Cursor--
	}
	if inputRepeating(ebiten.KeyArrowRight) && ti.Cursor < runeCount {
		ti.Cursor++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		ti.Cursor = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		ti.Cursor = runeCount
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if unicode.IsControl(r) {
			continue
		}
		if ti.MaxLen > 0 && utf8.RuneCountInString(ti.Text) >= ti.MaxLen {
			break
		}
		ti.insertAtCursor(string(r))
		changed = true
	}

	// Backspace deletes before the cursor
	if inputRepeating(ebiten.KeyBackspace) && ti.Cursor > 0 {
		before, after := ti.splitAtCursor()
		_, size := utf8.DecodeLastRuneInString(before)
		ti.Text = before[:len(before)-size] + after
		ti.Cursor--
		changed = true
	}

	// Delete removes the rune after it
	if inputRepeating(ebiten.KeyDelete) && ti.Cursor < utf8.RuneCountInString(ti.Text) {
		before, after := ti.splitAtCursor()
		_, size := utf8.DecodeRuneInString(after)
		ti.Text = before + after[size:]
		changed = true
	}

	return changed
}

// DisplayText returns the text with a cursor indicator inserted at the cursor position.
func (ti *TextInput) DisplayText() string {
	before, after := ti.splitAtCursor()
	return before + "│" + after
}

func (ti *TextInput) insertAtCursor(s string) {
	before, after := ti.splitAtCursor()
	ti.Text = before + s + after
	ti.Cursor += utf8.RuneCountInString(s)
}

// splitAtCursor returns the text before and after the cursor position.
func (ti *TextInput) splitAtCursor() (before, after string) {
	bytePos := 0
	for i := 0; i < ti.Cursor && bytePos < len(ti.Text); i++ {
		_, size := utf8.DecodeRuneInString(ti.Text[bytePos:])
		bytePos += size
	}
	return ti.Text[:bytePos], ti.Text[bytePos:]
}
