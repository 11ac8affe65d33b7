package icon

import (
	"image"
	"image/color"
	"math"
)

// Colours match the dark gallery palette.
var (
	amber     = color.RGBA{R: 0xD4, G: 0xA5, B: 0x74, A: 0xFF}
	amberDark = color.RGBA{R: 0xA8, G: 0x7E, B: 0x52, A: 0xFF}
	darkBG    = color.RGBA{R: 0x0C, G: 0x0C, B: 0x0D, A: 0xFF}
	bodyCol   = color.RGBA{R: 0x24, G: 0x24, B: 0x27, A: 0xFF}
	glintCol  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x70}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Rounded tile as the camera body
	fillRoundedRect(img, 0, 0, s-1, s-1, s*0.18, bodyCol)

	cx, cy := s*0.5, s*0.52
	fillCircle(img, cx, cy, s*0.40, darkBG)
	drawAperture(img, cx, cy, s*0.34)

	// Viewfinder bump and lens glint
	fillRoundedRect(img, s*0.62, s*0.06, s*0.22, s*0.10, s*0.03, amberDark)
	fillCircle(img, cx-s*0.12, cy-s*0.12, s*0.05, glintCol)

	return img
}

// drawAperture shades six twisted blades around an open centre.
func drawAperture(img *image.RGBA, cx, cy, r float64) {
	const blades = 6
	bounds := img.Bounds()
	hole := r * 0.32
	for y := int(cy - r); y <= int(cy+r+1) && y < bounds.Max.Y; y++ {
		for x := int(cx - r); x <= int(cx+r+1) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := math.Hypot(dx, dy)
			if d > r || d < hole {
				continue
			}
			// Blades twist as they approach the rim.
			a := math.Atan2(dy, dx) + (d/r)*1.1
			sector := int(math.Floor((a + math.Pi*2) / (2 * math.Pi / blades)))
			if sector%2 == 0 {
				blendPixel(img, x, y, amber)
			} else {
				blendPixel(img, x, y, amberDark)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
