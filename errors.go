package macpaint

import (
	"errors"
	"fmt"
)

var (
	// ErrShortHeader means the input ends inside the 512-byte header.
	ErrShortHeader = errors.New("macpaint: truncated header")
	// ErrTruncated means the compressed stream ran out before a scanline
	// was complete.
	ErrTruncated = errors.New("macpaint: stream ends mid-scanline")
	// ErrOverrun means a run would write past the end of its scanline.
	ErrOverrun = errors.New("macpaint: run overruns scanline")
	// ErrNotMacBinary is returned when a MacBinary header cannot be built.
	ErrNotMacBinary = errors.New("macpaint: not a MacBinary file")
)

// A DimensionError reports an image that is not exactly Width x Height.
type DimensionError struct {
	Width, Height int
}

func (e DimensionError) Error() string {
	return fmt.Sprintf("macpaint: image is %dx%d, want %dx%d", e.Width, e.Height, Width, Height)
}

// A FormatError reports malformed MacPaint data. Row is the scanline being
// decoded (-1 for the header) and Offset the position of the failing
// control byte in the input.
type FormatError struct {
	Row    int
	Offset int
	Err    error
}

func (e *FormatError) Error() string {
	if e.Row < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (scanline %d at byte %d)", e.Err, e.Row, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }
