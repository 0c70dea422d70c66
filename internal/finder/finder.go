// Package finder records classic Mac OS type and creator codes on files,
// so Finder-aware tools open MacPaint documents with the right
// application. The codes live in the 32-byte FinderInfo extended
// attribute; the first eight bytes are the type and the creator.
package finder

import (
	"errors"
	"fmt"
)

const infoSize = 32

// ErrNoInfo is returned by Read when a file carries no FinderInfo.
var ErrNoInfo = errors.New("finder: no FinderInfo attribute")

// Tag sets the type and creator of the file at path, keeping the other
// FinderInfo fields if the file already has them. Both codes must be
// exactly four bytes.
func Tag(path, fileType, creator string) error {
	if len(fileType) != 4 || len(creator) != 4 {
		return fmt.Errorf("finder: type %q and creator %q must be 4 bytes", fileType, creator)
	}
	info, err := getInfo(path)
	if err != nil && !errors.Is(err, ErrNoInfo) {
		return err
	}
	if len(info) != infoSize {
		info = make([]byte, infoSize)
	}
	copy(info[0:4], fileType)
	copy(info[4:8], creator)
	if err := setInfo(path, info); err != nil {
		return fmt.Errorf("finder: tagging %s: %w", path, err)
	}
	return nil
}

// Read returns the type and creator recorded on the file at path.
func Read(path string) (fileType, creator string, err error) {
	info, err := getInfo(path)
	if err != nil {
		return "", "", err
	}
	if len(info) < 8 {
		return "", "", ErrNoInfo
	}
	return string(info[0:4]), string(info[4:8]), nil
}
