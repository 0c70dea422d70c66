package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// outputFormat picks the raster format: an explicit choice wins,
// otherwise the output's extension decides, and PNG is the fallback.
func outputFormat(explicit, path string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	}
	return "png"
}

func encodeImage(w io.Writer, img image.Image, format string, deflate bool) error {
	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		opts := &tiff.Options{Compression: tiff.Uncompressed}
		if deflate {
			opts = &tiff.Options{Compression: tiff.Deflate, Predictor: true}
		}
		return tiff.Encode(w, img, opts)
	}
	return fmt.Errorf("unsupported output format %q", format)
}
