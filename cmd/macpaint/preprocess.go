package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/kevin-cantwell/macpaint"
	"github.com/kevin-cantwell/macpaint/internal/config"
)

// adjustImage applies tone corrections. Neutral settings return img
// untouched.
func adjustImage(img image.Image, a config.Adjust) image.Image {
	if a.Gamma != 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen > 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		img = imaging.AdjustSigmoid(img, a.SigmoidMidpoint, a.SigmoidFactor)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	return img
}

// fitImage puts img on a blank page. "pad" keeps the top-left corner,
// cropping whatever hangs off the page; "scale" shrinks to fit and
// centres. "none" leaves the size alone for the encoder to reject.
func fitImage(img image.Image, mode string) (image.Image, error) {
	r := img.Bounds()
	switch mode {
	case config.FitNone, "":
		return img, nil
	case config.FitPad:
		if r.Dx() == macpaint.Width && r.Dy() == macpaint.Height && r.Min == (image.Point{}) {
			return img, nil
		}
		return imaging.Paste(paper(), img, image.Pt(0, 0)), nil
	case config.FitScale:
		if r.Dx() > macpaint.Width || r.Dy() > macpaint.Height {
			img = resize.Thumbnail(macpaint.Width, macpaint.Height, img, resize.Lanczos3)
		}
		return imaging.PasteCenter(paper(), img), nil
	}
	return nil, fmt.Errorf("unknown fit %q", mode)
}

func paper() *image.NRGBA {
	return imaging.New(macpaint.Width, macpaint.Height, color.White)
}
