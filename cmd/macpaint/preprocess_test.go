package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/macpaint"
	"github.com/kevin-cantwell/macpaint/internal/config"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func isBlack(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0 && g == 0 && b == 0 && a == 0xffff
}

var _ = Describe("fitImage", func() {
	It("leaves the picture alone without a fit", func() {
		img := solid(10, 10, color.Black)
		out, err := fitImage(img, config.FitNone)
		Expect(err).NotTo(HaveOccurred())
		Expect(out == image.Image(img)).To(BeTrue())
	})

	It("pads a small picture from the top left onto white paper", func() {
		out, err := fitImage(solid(100, 50, color.Black), config.FitPad)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Bounds()).To(Equal(image.Rect(0, 0, macpaint.Width, macpaint.Height)))
		Expect(isBlack(out.At(0, 0))).To(BeTrue())
		Expect(isBlack(out.At(99, 49))).To(BeTrue())
		Expect(isWhite(out.At(100, 49))).To(BeTrue())
		Expect(isWhite(out.At(0, 50))).To(BeTrue())
	})

	It("crops a large picture when padding", func() {
		out, err := fitImage(solid(1000, 1000, color.Black), config.FitPad)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Bounds().Size()).To(Equal(image.Pt(macpaint.Width, macpaint.Height)))
		Expect(isBlack(out.At(macpaint.Width-1, macpaint.Height-1))).To(BeTrue())
	})

	It("shrinks a large picture to fit and centres it", func() {
		out, err := fitImage(solid(1152, 720, color.Black), config.FitScale)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Bounds().Size()).To(Equal(image.Pt(macpaint.Width, macpaint.Height)))
		// 1152x720 halves to 576x360, leaving 180 rows of paper above.
		Expect(isWhite(out.At(288, 100))).To(BeTrue())
		Expect(isBlack(out.At(288, 360))).To(BeTrue())
		Expect(isWhite(out.At(288, 620))).To(BeTrue())
	})

	It("centres a small picture without enlarging it", func() {
		out, err := fitImage(solid(10, 10, color.Black), config.FitScale)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Bounds().Size()).To(Equal(image.Pt(macpaint.Width, macpaint.Height)))
		Expect(isBlack(out.At(288, 360))).To(BeTrue())
		Expect(isWhite(out.At(270, 360))).To(BeTrue())
	})

	It("rejects unknown fits", func() {
		_, err := fitImage(solid(1, 1, color.Black), "stretch")
		Expect(err).To(HaveOccurred())
	})

	It("produces pages the encoder accepts", func() {
		out, err := fitImage(solid(300, 900, color.Gray{0x40}), config.FitScale)
		Expect(err).NotTo(HaveOccurred())
		_, err = macpaint.ToLegacy(out)
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("adjustImage", func() {
	It("is a no-op with neutral settings", func() {
		img := solid(4, 4, color.Gray{0x80})
		Expect(adjustImage(img, config.Default().Adjust) == image.Image(img)).To(BeTrue())
	})

	It("inverts", func() {
		out := adjustImage(solid(4, 4, color.White), config.Adjust{Gamma: 1, Invert: true})
		Expect(isBlack(out.At(2, 2))).To(BeTrue())
	})

	It("steepens contrast around the sigmoid midpoint", func() {
		a := config.Default().Adjust
		a.SigmoidFactor = 10
		dark := color.GrayModel.Convert(adjustImage(solid(4, 4, color.Gray{0x60}), a).At(1, 1)).(color.Gray)
		light := color.GrayModel.Convert(adjustImage(solid(4, 4, color.Gray{0xa0}), a).At(1, 1)).(color.Gray)
		Expect(dark.Y).To(BeNumerically("<", 0x60))
		Expect(light.Y).To(BeNumerically(">", 0xa0))
	})

	It("brightens to white at full brightness", func() {
		out := adjustImage(solid(4, 4, color.Gray{0x40}), config.Adjust{Gamma: 1, Brightness: 100})
		Expect(isWhite(out.At(1, 1))).To(BeTrue())
	})
})

var _ = Describe("outputFormat", func() {
	DescribeTable("chooses the raster format",
		func(explicit, path, want string) {
			Expect(outputFormat(explicit, path)).To(Equal(want))
		},
		Entry("by extension", "", "page.BMP", "bmp"),
		Entry("tif", "", "page.tif", "tiff"),
		Entry("tiff", "", "page.tiff", "tiff"),
		Entry("fallback", "", "page.out", "png"),
		Entry("stdout", "", "-", "png"),
		Entry("explicit wins", "TIFF", "page.png", "tiff"),
	)
})

var _ = Describe("encodeImage and decodeImage", func() {
	page := macpaint.Render(macpaint.NewBitmap(), macpaint.Mono)

	DescribeTable("round trip every output format",
		func(format string, deflate bool) {
			var buf bytes.Buffer
			Expect(encodeImage(&buf, page, format, deflate)).NotTo(HaveOccurred())
			img, _, err := decodeImage(&buf, format)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds().Size()).To(Equal(image.Pt(macpaint.Width, macpaint.Height)))
			Expect(isWhite(img.At(10, 10))).To(BeTrue())
		},
		Entry("png", "png", false),
		Entry("bmp", "bmp", false),
		Entry("tiff", "tiff", false),
		Entry("deflated tiff", "tiff", true),
	)

	It("sniffs the format when none is given", func() {
		var buf bytes.Buffer
		Expect(png.Encode(&buf, page)).NotTo(HaveOccurred())
		_, format, err := decodeImage(&buf, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(format).To(Equal("png"))
	})

	It("rejects unknown formats", func() {
		Expect(encodeImage(&bytes.Buffer{}, page, "pcx", false)).To(HaveOccurred())
		_, _, err := decodeImage(&bytes.Buffer{}, "pcx")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("documentName", func() {
	It("drops the directory and extension", func() {
		Expect(documentName("/tmp/pictures/Dog.mac")).To(Equal("Dog"))
		Expect(documentName("-")).To(Equal("untitled"))
	})
})
