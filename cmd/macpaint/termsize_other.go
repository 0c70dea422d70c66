//go:build !unix

package main

import "errors"

func terminalSize() (cols, lines int, err error) {
	return 0, 0, errors.ErrUnsupported
}
