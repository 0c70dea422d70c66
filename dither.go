package macpaint

import (
	"fmt"
	"image"
	"sort"
	"strings"
)

// A Ditherer reduces a Width x Height gray image to a page of ink and
// paper. It returns a DimensionError for any other size.
type Ditherer interface {
	Dither(gray *image.Gray) (*Bitmap, error)
}

// Dither halftones gray with Atkinson error diffusion.
func Dither(gray *image.Gray) (*Bitmap, error) {
	return Atkinson{}.Dither(gray)
}

// atkinson lists where a pixel's error goes, relative to the pixel. Every
// target comes later in raster order. Each gets an eighth, so a quarter of
// the error is dropped; that keeps highlights and shadows clean.
var atkinson = [6]image.Point{
	{1, 0}, {2, 0},
	{-1, 1}, {0, 1}, {1, 1},
	{0, 2},
}

// Atkinson is the error diffusion ditherer of the original Macintosh.
type Atkinson struct{}

// Dither visits pixels left to right, top to bottom. A pixel plus its
// accumulated error is paper at 128 and above and ink below; the
// difference from the value actually drawn (0 or 255) is divided by
// eight, truncating, and added to each of the six neighbours that fall
// inside the page. The arithmetic is integer only, so results are
// reproducible bit for bit.
func (Atkinson) Dither(gray *image.Gray) (*Bitmap, error) {
	r := gray.Bounds()
	if r.Dx() != Width || r.Dy() != Height {
		return nil, DimensionError{r.Dx(), r.Dy()}
	}
	// errs is row-major like the page. It has two spare rows so the
	// deepest offset never needs a bounds check on y.
	errs := make([]int32, Width*(Height+2))
	out := NewBitmap()
	for y := 0; y < Height; y++ {
		row := gray.Pix[gray.PixOffset(r.Min.X, r.Min.Y+y):]
		for x := 0; x < Width; x++ {
			v := int32(row[x]) + errs[y*Width+x]
			rendered := int32(255)
			if v < 128 {
				rendered = 0
				out.SetBlack(x, y, true)
			}
			e := (v - rendered) / 8
			if e == 0 {
				continue
			}
			for _, d := range atkinson {
				nx := x + d.X
				if nx < 0 || nx >= Width {
					continue
				}
				errs[(y+d.Y)*Width+nx] += e
			}
		}
	}
	return out, nil
}

// Threshold draws ink wherever a pixel is darker than Level, with no
// diffusion. It suits line art that is already black and white.
type Threshold struct {
	Level uint8
}

func (t Threshold) Dither(gray *image.Gray) (*Bitmap, error) {
	r := gray.Bounds()
	if r.Dx() != Width || r.Dy() != Height {
		return nil, DimensionError{r.Dx(), r.Dy()}
	}
	out := NewBitmap()
	for y := 0; y < Height; y++ {
		row := gray.Pix[gray.PixOffset(r.Min.X, r.Min.Y+y):]
		for x := 0; x < Width; x++ {
			if row[x] < t.Level {
				out.SetBlack(x, y, true)
			}
		}
	}
	return out, nil
}

var ditherers = map[string]func() Ditherer{
	"atkinson":  func() Ditherer { return Atkinson{} },
	"threshold": func() Ditherer { return Threshold{Level: 128} },
}

// DithererByName returns the ditherer registered under name, ignoring
// case.
func DithererByName(name string) (Ditherer, error) {
	if f, ok := ditherers[strings.ToLower(name)]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("macpaint: unknown ditherer %q (want one of %s)", name, strings.Join(DithererNames(), ", "))
}

// DithererNames lists the names DithererByName accepts.
func DithererNames() []string {
	names := make([]string, 0, len(ditherers))
	for n := range ditherers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
