package main

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

const stdio = "-"

// openInput opens a file, an http(s) URL, or stdin for "-".
func openInput(input string) (io.ReadCloser, error) {
	switch {
	case input == "" || input == stdio:
		return io.NopCloser(os.Stdin), nil
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		resp, err := http.Get(input)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("%s: %s", input, resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(input)
}

func readInput(input string) ([]byte, error) {
	r, err := openInput(input)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

var decoders = map[string]func(io.Reader) (image.Image, error){
	"png":  png.Decode,
	"jpeg": jpeg.Decode,
	"jpg":  jpeg.Decode,
	"gif":  gif.Decode,
	"bmp":  bmp.Decode,
	"tiff": tiff.Decode,
	"webp": webp.Decode,
}

// decodeImage decodes r with the decoder for format, or by sniffing the
// content when format is empty.
func decodeImage(r io.Reader, format string) (image.Image, string, error) {
	if format == "" {
		return image.Decode(r)
	}
	decode, ok := decoders[strings.ToLower(format)]
	if !ok {
		return nil, "", fmt.Errorf("unsupported input format %q", format)
	}
	img, err := decode(r)
	return img, format, err
}

var errTerminal = errors.New("refusing to write binary data to a terminal")

// stdoutOutput returns stdout unless it is a terminal.
func stdoutOutput() (io.Writer, error) {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil, errTerminal
	}
	return os.Stdout, nil
}

// writeOutput runs write against stdout for "-", or against a temporary
// file beside output that replaces output only once write and Close
// succeed. A failed write leaves any existing output untouched.
func writeOutput(output string, write func(io.Writer) error) error {
	if output == stdio {
		w, err := stdoutOutput()
		if err != nil {
			return err
		}
		return write(w)
	}
	tmp, err := os.CreateTemp(filepath.Dir(output), "."+filepath.Base(output)+"-*")
	if err != nil {
		return err
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), output); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
