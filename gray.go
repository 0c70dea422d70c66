package macpaint

import (
	"image"
	"image/color"
	"math"
)

const gamma = 2.2

// linear maps an 8-bit sRGB channel to linear light, scaled by 1<<16.
var linear = func() (t [256]uint32) {
	for i := range t {
		t[i] = uint32(math.Round(math.Pow(float64(i)/255, gamma) * (1 << 16)))
	}
	return
}()

// Grayscale converts img to 8-bit intensities, 0 black and 255 white.
//
// Gray images keep their values. Color pixels are composited onto white
// paper, then reduced to perceptual lightness: relative luminance
// Y = 0.2126 R + 0.7152 G + 0.0722 B over linear channels, and
// L* = 116 ∛Y - 16, scaled to 0..255. Lightness spreads mid-tones more
// evenly than luminance, which dithers better.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	switch src := img.(type) {
	case *image.Gray:
		dst := image.NewGray(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			copy(dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)],
				src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)])
		}
		return dst
	}
	gray := isGrayModel(img.ColorModel())
	dst := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if gray {
				dst.SetGray(x, y, color.GrayModel.Convert(c).(color.Gray))
				continue
			}
			dst.SetGray(x, y, color.Gray{Y: lightness(c)})
		}
	}
	return dst
}

func isGrayModel(m color.Model) bool {
	if m == color.GrayModel || m == color.Gray16Model {
		return true
	}
	p, ok := m.(color.Palette)
	if !ok {
		return false
	}
	for _, c := range p {
		r, g, b, a := c.RGBA()
		if r != g || g != b || a != 0xffff {
			return false
		}
	}
	return true
}

// lightness returns the CIE L* of c over white, scaled to 0..255.
func lightness(c color.Color) uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r, g, b := overWhite(n.R, n.A), overWhite(n.G, n.A), overWhite(n.B, n.A)
	yl := (2126*float64(linear[r]) + 7152*float64(linear[g]) + 722*float64(linear[b])) / 10000 / (1 << 16)
	l := (116*math.Cbrt(yl) - 16) / 100
	if l <= 0 {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return uint8(math.Round(l * 255))
}

// overWhite composites one non-premultiplied channel onto white.
func overWhite(v, a uint8) uint8 {
	return uint8((uint32(v)*uint32(a) + 255*(255-uint32(a)) + 127) / 255)
}
