package macpaint

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Pattern is an 8x8 fill tile from the header's pattern table, one byte
// per row, leftmost pixel in the high bit. A set bit is black:
//
//	0x88 0x00 0x22 0x00 ...  ->  #...#...
//	                             ........
//	                             ..#...#.
//	                             ........
type Pattern [PatternSize]byte

func (p Pattern) ColorModel() color.Model { return Palette }

func (p Pattern) Bounds() image.Rectangle { return image.Rect(0, 0, 8, 8) }

// At returns the pixel at (x, y), tiling the pattern in both directions.
func (p Pattern) At(x, y int) color.Color {
	return Palette[p[y&7]>>uint(7-x&7)&1]
}

// IsZero reports whether the pattern is entirely white.
func (p Pattern) IsZero() bool {
	return p == Pattern{}
}

// Header is the 512 bytes preceding the scanlines. All fields are
// big-endian:
//
//	offset  size  field
//	0       4     version
//	4       304   38 patterns of 8 bytes
//	308     204   reserved
type Header struct {
	Version  uint32
	Patterns [PatternCount]Pattern
	Reserved [reservedSize]byte
}

// NewHeader returns the header written for new documents: the reader's
// default patterns and a zeroed table.
func NewHeader() Header {
	return Header{Version: VersionDefaultPatterns}
}

// MarshalBinary returns the HeaderSize byte encoding of h.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.appendTo(make([]byte, 0, HeaderSize)), nil
}

func (h *Header) appendTo(b []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, h.Version)
	for _, p := range h.Patterns {
		b = append(b, p[:]...)
	}
	return append(b, h.Reserved[:]...)
}

// UnmarshalBinary parses the first HeaderSize bytes of data.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return &FormatError{Row: -1, Offset: len(data), Err: ErrShortHeader}
	}
	h.Version = binary.BigEndian.Uint32(data)
	off := 4
	for i := range h.Patterns {
		copy(h.Patterns[i][:], data[off:off+PatternSize])
		off += PatternSize
	}
	copy(h.Reserved[:], data[off:HeaderSize])
	return nil
}

// UsedPatterns counts the patterns that are not all white.
func (h *Header) UsedPatterns() int {
	n := 0
	for _, p := range h.Patterns {
		if !p.IsZero() {
			n++
		}
	}
	return n
}
