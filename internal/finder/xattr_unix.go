//go:build darwin || linux

package finder

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

func getInfo(path string) ([]byte, error) {
	buf := make([]byte, infoSize)
	n, err := unix.Getxattr(path, attrName, buf)
	switch {
	case errors.Is(err, errNoAttr):
		return nil, ErrNoInfo
	case errors.Is(err, unix.ENOTSUP):
		return nil, fmt.Errorf("finder: %s: %w", path, errors.ErrUnsupported)
	case err != nil:
		return nil, fmt.Errorf("finder: reading %s: %w", path, err)
	}
	return buf[:n], nil
}

func setInfo(path string, info []byte) error {
	err := unix.Setxattr(path, attrName, info, 0)
	if errors.Is(err, unix.ENOTSUP) {
		return errors.ErrUnsupported
	}
	return err
}
