package main

import (
	"bufio"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/nfnt/resize"
)

// brailleCell is a 2x4 block of pixels, indexed [x][y]:
//
//	+----------+
//	|(0,0)(1,0)|
//	|(0,1)(1,1)|
//	|(0,2)(1,2)|
//	|(0,3)(1,3)|
//	+----------+
type brailleCell [2][4]bool

// rune returns the braille symbol with a raised dot for each ink pixel.
// Unicode numbers the dots
//
//	(1)(4)
//	(2)(5)
//	(3)(6)
//	(7)(8)
//
// and dot n is bit n-1 above U+2800.
func (c brailleCell) rune() rune {
	order := [8]bool{c[0][0], c[0][1], c[0][2], c[1][0], c[1][1], c[1][2], c[0][3], c[1][3]}
	var v rune
	for i, dot := range order {
		if dot {
			v |= 1 << uint(i)
		}
	}
	return '⠀' + v
}

// writeBraille prints img one line per four pixel rows, two pixels per
// symbol. Black pixels become raised dots.
func writeBraille(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py += 4 {
		for px := bounds.Min.X; px < bounds.Max.X; px += 2 {
			var c brailleCell
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
						continue
					}
					c[x][y] = isInk(img.At(px+x, py+y))
				}
			}
			bw.WriteRune(c.rune())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func isInk(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 0x80
}

var previewPalette = color.Palette{color.Black, color.White}

// shrinkPage scales img to at most cols x lines braille symbols and
// redraws it in black and white with Floyd-Steinberg diffusion. Pages
// never grow.
func shrinkPage(img image.Image, cols, lines int) *image.Paletted {
	if cols > 0 && lines > 0 {
		img = resize.Thumbnail(uint(cols*2), uint(lines*4), img, resize.Bilinear)
	}
	b := img.Bounds()
	p := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), previewPalette)
	draw.FloydSteinberg.Draw(p, p.Bounds(), img, b.Min)
	return p
}
