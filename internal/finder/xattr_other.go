//go:build !darwin && !linux

package finder

import "errors"

func getInfo(string) ([]byte, error) { return nil, errors.ErrUnsupported }

func setInfo(string, []byte) error { return errors.ErrUnsupported }
