package macpaint_test

import (
	"image"
	"image/color"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/macpaint"
)

var _ = Describe("Grayscale", func() {
	DescribeTable("maps colors to lightness",
		func(c color.Color, want uint8) {
			img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
			img.Set(0, 0, c)
			Expect(macpaint.Grayscale(img).GrayAt(0, 0).Y).To(Equal(want))
		},
		Entry("white", color.White, uint8(255)),
		Entry("black", color.Black, uint8(0)),
		Entry("mid gray", color.NRGBA{128, 128, 128, 255}, uint8(138)),
		Entry("red", color.NRGBA{255, 0, 0, 255}, uint8(136)),
		Entry("green", color.NRGBA{0, 255, 0, 255}, uint8(224)),
		Entry("blue", color.NRGBA{0, 0, 255, 255}, uint8(82)),
		Entry("transparent is paper", color.NRGBA{0, 0, 0, 0}, uint8(255)),
		Entry("half transparent black", color.NRGBA{0, 0, 0, 128}, uint8(137)),
	)

	It("copies gray images unchanged", func() {
		src := image.NewGray(image.Rect(5, 5, 8, 6))
		copy(src.Pix, []byte{0, 77, 200})
		g := macpaint.Grayscale(src)
		Expect(g == src).To(BeFalse())
		Expect(g.Bounds()).To(Equal(src.Bounds()))
		Expect(g.GrayAt(6, 5).Y).To(Equal(uint8(77)))
		src.Pix[1] = 0
		Expect(g.GrayAt(6, 5).Y).To(Equal(uint8(77)))
	})

	It("keeps 16-bit gray intensities", func() {
		src := image.NewGray16(image.Rect(0, 0, 1, 1))
		src.SetGray16(0, 0, color.Gray16{Y: 0x8080})
		Expect(macpaint.Grayscale(src).GrayAt(0, 0).Y).To(Equal(uint8(0x80)))
	})

	It("keeps gray palette entries", func() {
		src := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Gray{0x10}, color.Gray{0x80}})
		src.SetColorIndex(0, 0, 1)
		Expect(macpaint.Grayscale(src).GrayAt(0, 0).Y).To(Equal(uint8(0x80)))
	})
})
