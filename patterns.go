package macpaint

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

const (
	sheetColumns = 10
	sheetRepeat  = 2 // tiles per swatch side
)

var sheetFrame = color.RGBA{0x99, 0x99, 0x99, 0xff}

// PatternSheet draws the header's pattern table as a grid of framed
// swatches, ten to a row, each showing its pattern tiled 2x2. Every
// pattern pixel becomes a scale x scale square.
func (h *Header) PatternSheet(scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	cell := PatternSize * sheetRepeat * scale
	gap := 4 * scale
	rows := (PatternCount + sheetColumns - 1) / sheetColumns
	sheet := image.NewRGBA(image.Rect(0, 0,
		gap+sheetColumns*(cell+gap),
		gap+rows*(cell+gap)))
	draw.Draw(sheet, sheet.Bounds(), image.White, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(sheet)
	gc.SetFillColor(color.Black)
	gc.SetStrokeColor(sheetFrame)
	gc.SetLineWidth(1)
	for i, p := range h.Patterns {
		x0 := float64(gap + i%sheetColumns*(cell+gap))
		y0 := float64(gap + i/sheetColumns*(cell+gap))

		gc.BeginPath()
		for y := 0; y < PatternSize*sheetRepeat; y++ {
			for x := 0; x < PatternSize*sheetRepeat; x++ {
				if p.At(x, y) != color.Black {
					continue
				}
				px, py := x0+float64(x*scale), y0+float64(y*scale)
				draw2dkit.Rectangle(gc, px, py, px+float64(scale), py+float64(scale))
			}
		}
		gc.Fill()

		gc.BeginPath()
		draw2dkit.Rectangle(gc, x0-0.5, y0-0.5, x0+float64(cell)+0.5, y0+float64(cell)+0.5)
		gc.Stroke()
	}
	return sheet
}
