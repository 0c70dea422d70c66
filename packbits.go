package macpaint

// PackBits groups a scanline into runs, each introduced by one control
// byte n:
//
//	0..127    n+1 literal bytes follow
//	128       no-op
//	129..255  one byte follows, repeated 257-n times
//
// Rows are compressed independently; no run crosses a row boundary.

// PackRow appends the PackBits encoding of row to dst and returns the
// extended slice. Two or more equal bytes always become a repeat run, so
// literal runs hold only bytes that differ from their right neighbour.
func PackRow(dst, row []byte) []byte {
	for i := 0; i < len(row); {
		n := repeatLen(row[i:])
		if n >= 2 {
			dst = append(dst, repeatControl(n), row[i])
			i += n
			continue
		}
		start := i
		for i++; i < len(row) && i-start < MaxRun; i++ {
			if i+1 < len(row) && row[i] == row[i+1] {
				break
			}
		}
		dst = append(dst, literalControl(i-start))
		dst = append(dst, row[start:i]...)
	}
	return dst
}

// PackedSize returns len(PackRow(nil, row)) without building the encoding.
func PackedSize(row []byte) int {
	size := 0
	for i := 0; i < len(row); {
		if n := repeatLen(row[i:]); n >= 2 {
			size += 2
			i += n
			continue
		}
		start := i
		for i++; i < len(row) && i-start < MaxRun; i++ {
			if i+1 < len(row) && row[i] == row[i+1] {
				break
			}
		}
		size += 1 + i - start
	}
	return size
}

// UnpackRow decodes PackBits data from src until dst is full and returns
// the number of bytes of src consumed. It returns ErrTruncated if src ends
// first and ErrOverrun if a run does not fit in what is left of dst.
// On error dst holds partial output and must be discarded.
func UnpackRow(dst, src []byte) (int, error) {
	i, j := 0, 0
	for j < len(dst) {
		if i >= len(src) {
			return i, ErrTruncated
		}
		c := src[i]
		switch {
		case c < 128:
			n := int(c) + 1
			if j+n > len(dst) {
				return i, ErrOverrun
			}
			if i+1+n > len(src) {
				return i, ErrTruncated
			}
			copy(dst[j:], src[i+1:i+1+n])
			i += 1 + n
			j += n
		case c > 128:
			n := 257 - int(c)
			if j+n > len(dst) {
				return i, ErrOverrun
			}
			if i+1 >= len(src) {
				return i, ErrTruncated
			}
			v := src[i+1]
			for k := j; k < j+n; k++ {
				dst[k] = v
			}
			i += 2
			j += n
		default:
			i++
		}
	}
	return i, nil
}

// repeatLen counts how many leading bytes of b equal b[0], up to MaxRun.
func repeatLen(b []byte) int {
	n := 1
	for n < len(b) && n < MaxRun && b[n] == b[0] {
		n++
	}
	return n
}

func repeatControl(n int) byte {
	if n < 2 || n > MaxRun {
		panic("macpaint: repeat run length out of range")
	}
	return byte(257 - n)
}

func literalControl(n int) byte {
	if n < 1 || n > MaxRun {
		panic("macpaint: literal run length out of range")
	}
	return byte(n - 1)
}
