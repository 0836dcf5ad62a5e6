//go:build !unix

package region

import "errors"

// allocate falls back to the Go heap when mmap is not available. The
// executable flag cannot be honored without page-level protection control,
// so asking for it is an error rather than a silent downgrade.
func allocate(size uint64, executable bool) ([]byte, func([]byte) error, error) {
	if executable {
		return nil, nil, errors.New("executable regions are not supported on this platform")
	}
	return make([]byte, size), nil, nil
}
