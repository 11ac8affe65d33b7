package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
	fontFaces     = make(map[faceKey]*text.GoTextFace)
)

type faceKey struct {
	size float64
	bold bool
}

// InitFonts loads the bundled Go fonts.
func InitFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return err
	}
	regularSource, boldSource = src, bold
	return nil
}

func getFace(size float64, bold bool) *text.GoTextFace {
	key := faceKey{size, bold}
	if face, ok := fontFaces[key]; ok {
		return face
	}
	src := regularSource
	if bold {
		src = boldSource
	}
	face := &text.GoTextFace{Source: src, Size: size}
	fontFaces[key] = face
	return face
}

func drawWithFace(dst *ebiten.Image, txt string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawWithFace(dst, txt, getFace(size, false), x, y, clr)
}

// DrawHeading draws txt in the bold face.
func DrawHeading(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawWithFace(dst, txt, getFace(size, true), x, y, clr)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, getFace(size, false), 0)
}

func MeasureHeading(txt string, size float64) (float64, float64) {
	return text.Measure(txt, getFace(size, true), 0)
}

// wrapLines splits txt into lines no wider than maxWidth.
func wrapLines(txt string, maxWidth, size float64) []string {
	var lines []string
	for _, para := range strings.Split(txt, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			test := line + " " + word
			if w, _ := MeasureText(test, size); w > maxWidth {
				lines = append(lines, line)
				line = word
			} else {
				line = test
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// DrawTextWrapped draws txt wrapped to maxWidth and returns the height used.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, clr color.Color) float64 {
	lines := wrapLines(txt, maxWidth, size)
	lineHeight := size * 1.5
	for i, line := range lines {
		DrawText(dst, line, x, y+float64(i)*lineHeight, size, clr)
	}
	return float64(len(lines)) * lineHeight
}

// WrappedHeight measures DrawTextWrapped without drawing.
func WrappedHeight(txt string, maxWidth, size float64) float64 {
	return float64(len(wrapLines(txt, maxWidth, size))) * size * 1.5
}

func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
