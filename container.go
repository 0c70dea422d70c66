package macpaint

import (
	"image"
	"io"
)

// File is a decoded MacPaint document.
type File struct {
	Header Header
	Bitmap *Bitmap
	// Trailing counts bytes after the last scanline. Files copied from
	// Mac volumes are often padded to a block boundary; the bytes are
	// kept out of the page and otherwise ignored.
	Trailing int
	// MacBinary is set when the document was read out of a MacBinary
	// wrapper.
	MacBinary *MacBinaryInfo
}

// Unmarshal parses a MacPaint document. A MacBinary wrapper, if present,
// is removed first. It returns a *FormatError if the header is short or
// any scanline fails to decode; no partial page is returned.
func Unmarshal(data []byte) (*File, error) {
	f := &File{}
	if payload, info, ok := UnwrapMacBinary(data); ok {
		data, f.MacBinary = payload, info
	}
	if err := f.Header.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	b := NewBitmap()
	off := HeaderSize
	for y := 0; y < Height; y++ {
		n, err := UnpackRow(b.Row(y), data[off:])
		if err != nil {
			return nil, &FormatError{Row: y, Offset: off + n, Err: err}
		}
		off += n
	}
	f.Bitmap = b
	f.Trailing = len(data) - off
	return f, nil
}

// Marshal encodes b behind header h. A nil h writes NewHeader().
func Marshal(b *Bitmap, h *Header) ([]byte, error) {
	if b.Rect.Dx() != Width || b.Rect.Dy() != Height {
		return nil, DimensionError{b.Rect.Dx(), b.Rect.Dy()}
	}
	if h == nil {
		nh := NewHeader()
		h = &nh
	}
	// Blank rows pack to 2 bytes, so this is enough for most line art.
	out := make([]byte, 0, HeaderSize+Height*4)
	out = h.appendTo(out)
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		out = PackRow(out, b.Row(y))
	}
	return out, nil
}

// MarshalBinary re-encodes f with its own header. Trailing bytes and the
// MacBinary wrapper are not reproduced.
func (f *File) MarshalBinary() ([]byte, error) {
	return Marshal(f.Bitmap, &f.Header)
}

// PackedSize returns the size of the compressed scanlines of f.
func (f *File) PackedSize() int {
	n := 0
	for y := 0; y < Height; y++ {
		n += PackedSize(f.Bitmap.Row(y))
	}
	return n
}

// DecodeFile reads a whole MacPaint document from r.
func DecodeFile(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}

// Decode reads a MacPaint document from r and returns its page as a
// *Bitmap.
func Decode(r io.Reader) (image.Image, error) {
	f, err := DecodeFile(r)
	if err != nil {
		return nil, err
	}
	return f.Bitmap, nil
}

// DecodeConfig returns the color model and dimensions of a MacPaint
// document without decoding its scanlines. Every page is the same size,
// so only the header is checked.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var buf [HeaderSize + mbHeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil && err != io.ErrUnexpectedEOF {
		if err == io.EOF {
			return image.Config{}, &FormatError{Row: -1, Err: ErrShortHeader}
		}
		return image.Config{}, err
	}
	data := buf[:n]
	if _, _, ok := unwrapHeader(data); ok {
		data = data[mbHeaderSize:]
	}
	var h Header
	if err := h.UnmarshalBinary(data); err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: Palette, Width: Width, Height: Height}, nil
}
