package macpaint

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

type EncoderOpt func(enc *Encoder)

// WithDitherer replaces Atkinson dithering.
func WithDitherer(d Ditherer) EncoderOpt {
	return func(enc *Encoder) {
		enc.ditherer = d
	}
}

// WithHeader writes h instead of NewHeader(), e.g. to keep the pattern
// table of a document being edited.
func WithHeader(h Header) EncoderOpt {
	return func(enc *Encoder) {
		enc.header = &h
	}
}

// WithMacBinary wraps the output in a MacBinary header describing a
// MacPaint document named name.
func WithMacBinary(name string) EncoderOpt {
	return func(enc *Encoder) {
		enc.macBinary = &MacBinaryInfo{Name: name}
	}
}

// An Encoder turns images into MacPaint documents.
type Encoder struct {
	writer    io.Writer      // Output
	ditherer  Ditherer       // Gray to 1-bit
	header    *Header        // nil writes NewHeader()
	macBinary *MacBinaryInfo // nil writes a bare document
}

func NewEncoder(w io.Writer, opts ...EncoderOpt) *Encoder {
	enc := Encoder{
		writer:   w,
		ditherer: Atkinson{},
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode writes img as a MacPaint document. img must be exactly
// Width x Height; nothing is written otherwise.
func (enc *Encoder) Encode(img image.Image) error {
	data, err := enc.marshal(img)
	if err != nil {
		return err
	}
	_, err = enc.writer.Write(data)
	return err
}

func (enc *Encoder) marshal(img image.Image) ([]byte, error) {
	if r := img.Bounds(); r.Dx() != Width || r.Dy() != Height {
		return nil, DimensionError{r.Dx(), r.Dy()}
	}
	var b *Bitmap
	if bm, ok := img.(*Bitmap); ok {
		b = bm
	} else {
		var err error
		if b, err = enc.ditherer.Dither(Grayscale(img)); err != nil {
			return nil, err
		}
	}
	data, err := Marshal(b, enc.header)
	if err != nil {
		return nil, err
	}
	if enc.macBinary != nil {
		return WrapMacBinary(data, *enc.macBinary)
	}
	return data, nil
}

// Encode writes img to w as a MacPaint document using Atkinson dithering.
func Encode(w io.Writer, img image.Image) error {
	return NewEncoder(w).Encode(img)
}

// ToLegacy converts a Width x Height image to MacPaint bytes: gray
// conversion, dithering, then PackBits. Any other size is rejected with a
// DimensionError; images are never scaled or cropped.
func ToLegacy(img image.Image, opts ...EncoderOpt) ([]byte, error) {
	return NewEncoder(nil, opts...).marshal(img)
}

// FromLegacy decodes MacPaint bytes into an image of the given depth.
func FromLegacy(data []byte, depth Depth) (image.Image, error) {
	f, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return Render(f.Bitmap, depth), nil
}

// Depth selects the pixel format FromLegacy and Render produce.
type Depth int

const (
	Gray8 Depth = iota // 8-bit gray
	Mono               // 1-bit paletted
	RGB24              // 8-bit RGB, opaque
)

// ParseDepth accepts a bit count: 1, 8 or 24.
func ParseDepth(s string) (Depth, error) {
	switch s {
	case "1":
		return Mono, nil
	case "8", "":
		return Gray8, nil
	case "24":
		return RGB24, nil
	}
	return 0, fmt.Errorf("macpaint: unsupported depth %q (want 1, 8 or 24)", s)
}

func (d Depth) String() string {
	switch d {
	case Mono:
		return "1"
	case Gray8:
		return "8"
	case RGB24:
		return "24"
	}
	return fmt.Sprintf("Depth(%d)", int(d))
}

// Render draws b as pure black and white pixels. The page carries no
// gray levels, so none are invented.
func Render(b *Bitmap, d Depth) image.Image {
	r := image.Rect(0, 0, b.Rect.Dx(), b.Rect.Dy())
	switch d {
	case Mono:
		p := image.NewPaletted(r, color.Palette{color.Gray{0xff}, color.Gray{0x00}})
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				p.Pix[y*p.Stride+x] = b.ColorIndexAt(b.Rect.Min.X+x, b.Rect.Min.Y+y)
			}
		}
		return p
	case RGB24:
		m := image.NewRGBA(r)
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				v := uint8(0xff)
				if b.Black(b.Rect.Min.X+x, b.Rect.Min.Y+y) {
					v = 0
				}
				i := m.PixOffset(x, y)
				m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3] = v, v, v, 0xff
			}
		}
		return m
	}
	g := image.NewGray(r)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			v := uint8(0xff)
			if b.Black(b.Rect.Min.X+x, b.Rect.Min.Y+y) {
				v = 0
			}
			g.Pix[y*g.Stride+x] = v
		}
	}
	return g
}
