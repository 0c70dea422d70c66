package macpaint

import (
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
)

func init() {
	for name, m := range map[string]dither.ErrorDiffusionMatrix{
		"floyd-steinberg":     dither.FloydSteinberg,
		"jarvis-judice-ninke": dither.JarvisJudiceNinke,
		"stucki":              dither.Stucki,
		"burkes":              dither.Burkes,
		"sierra":              dither.Sierra,
	} {
		m := m
		ditherers[name] = func() Ditherer { return Diffusion{Matrix: m, Serpentine: true} }
	}
	ditherers["bayer"] = func() Ditherer { return Ordered{Size: 8, Strength: 1} }
}

// Diffusion dithers with an arbitrary error diffusion matrix. Unlike
// Atkinson it works in linear light and conserves the whole error.
type Diffusion struct {
	Matrix     dither.ErrorDiffusionMatrix
	Serpentine bool // alternate scan direction per row
}

func (d Diffusion) Dither(gray *image.Gray) (*Bitmap, error) {
	r := gray.Bounds()
	if r.Dx() != Width || r.Dy() != Height {
		return nil, DimensionError{r.Dx(), r.Dy()}
	}
	dd := dither.NewDitherer(Palette)
	dd.Matrix = d.Matrix
	dd.Serpentine = d.Serpentine
	return fromPaletted(dd.DitherPaletted(gray)), nil
}

// Ordered dithers with a Size x Size Bayer matrix, giving the cross-hatch
// look of early printer drivers. Size must be a power of two.
type Ordered struct {
	Size     uint
	Strength float32
}

func (o Ordered) Dither(gray *image.Gray) (*Bitmap, error) {
	r := gray.Bounds()
	if r.Dx() != Width || r.Dy() != Height {
		return nil, DimensionError{r.Dx(), r.Dy()}
	}
	dd := dither.NewDitherer(Palette)
	dd.Mapper = dither.Bayer(o.Size, o.Size, o.Strength)
	return fromPaletted(dd.DitherPaletted(gray)), nil
}

// fromPaletted packs a two-color paletted page into a Bitmap, treating
// whichever entries are darker than mid-gray as ink.
func fromPaletted(p *image.Paletted) *Bitmap {
	ink := make([]bool, len(p.Palette))
	for i, c := range p.Palette {
		ink[i] = color.Gray16Model.Convert(c).(color.Gray16).Y < 0x8000
	}
	out := NewBitmap()
	r := p.Bounds()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if ink[p.ColorIndexAt(r.Min.X+x, r.Min.Y+y)] {
				out.SetBlack(x, y, true)
			}
		}
	}
	return out
}
