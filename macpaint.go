/*
Package macpaint reads and writes MacPaint documents.

A MacPaint document is a single 576x720 page (8x10 inches at 72 dpi) of
1-bit pixels. The file is a 512-byte header holding a version number and a
table of 38 fill patterns, followed by 720 scanlines of 72 bytes, each one
compressed on its own with PackBits.

Images headed for MacPaint are reduced to gray and dithered with Atkinson
error diffusion, the same halftone the original Macintosh used. Going the
other way every bit becomes a pure black or white pixel.
*/
package macpaint

import (
	"image"
	"image/color"
	"math/bits"
)

// Page geometry and header layout.
const (
	Width    = 576             // pixels per scanline
	Height   = 720             // scanlines per page
	RowBytes = (Width + 7) / 8 // packed bytes per scanline

	HeaderSize   = 512
	PatternCount = 38
	PatternSize  = 8
	reservedSize = HeaderSize - 4 - PatternCount*PatternSize

	// MaxRun is the longest run a single PackBits control byte describes.
	MaxRun = 128
)

// Header versions.
const (
	VersionDefaultPatterns uint32 = 0 // reader substitutes its own patterns
	VersionPatterns        uint32 = 2 // patterns in the header are used
)

// Finder type and creator codes of a MacPaint document.
const (
	FileType = "PNTG"
	Creator  = "MPNT"
)

// Palette maps bit values to colors: 0 is paper, 1 is ink.
var Palette = color.Palette{color.White, color.Black}

// Bitmap is a MacPaint page: Width x Height pixels, one bit per pixel.
// Each row is RowBytes long, the leftmost pixel in the most significant
// bit, and a set bit is black.
type Bitmap struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewBitmap returns a blank (all white) page.
func NewBitmap() *Bitmap {
	return &Bitmap{
		Pix:    make([]byte, RowBytes*Height),
		Stride: RowBytes,
		Rect:   image.Rect(0, 0, Width, Height),
	}
}

func (b *Bitmap) ColorModel() color.Model { return Palette }

func (b *Bitmap) Bounds() image.Rectangle { return b.Rect }

func (b *Bitmap) At(x, y int) color.Color {
	return Palette[b.ColorIndexAt(x, y)]
}

// ColorIndexAt returns 1 for ink and 0 for paper. Points outside the page
// are paper.
func (b *Bitmap) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(b.Rect)) {
		return 0
	}
	i, bit := b.pixBitOffset(x, y)
	return (b.Pix[i] >> bit) & 1
}

// Black reports whether the pixel at (x, y) is ink.
func (b *Bitmap) Black(x, y int) bool {
	return b.ColorIndexAt(x, y) == 1
}

// SetBlack sets the pixel at (x, y) to ink or paper.
func (b *Bitmap) SetBlack(x, y int, black bool) {
	if !(image.Point{x, y}.In(b.Rect)) {
		return
	}
	i, bit := b.pixBitOffset(x, y)
	if black {
		b.Pix[i] |= 1 << bit
	} else {
		b.Pix[i] &^= 1 << bit
	}
}

// Row returns the packed bytes of scanline y. The slice aliases Pix.
func (b *Bitmap) Row(y int) []byte {
	i := (y - b.Rect.Min.Y) * b.Stride
	return b.Pix[i : i+RowBytes]
}

// Ink counts the black pixels on the page.
func (b *Bitmap) Ink() int {
	n := 0
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		for _, v := range b.Row(y) {
			n += bits.OnesCount8(v)
		}
	}
	return n
}

// Equal reports whether b and o hold the same pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.Rect.Size() != o.Rect.Size() {
		return false
	}
	for y := 0; y < b.Rect.Dy(); y++ {
		r1, r2 := b.Row(b.Rect.Min.Y+y), o.Row(o.Rect.Min.Y+y)
		for i := range r1 {
			if r1[i] != r2[i] {
				return false
			}
		}
	}
	return true
}

// pixBitOffset returns the Pix index holding (x, y) and the bit within it.
func (b *Bitmap) pixBitOffset(x, y int) (i int, bit uint) {
	dx := x - b.Rect.Min.X
	i = (y-b.Rect.Min.Y)*b.Stride + dx/8
	bit = uint(7 - dx%8)
	return
}
