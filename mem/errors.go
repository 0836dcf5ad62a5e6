package mem

import "errors"

var (
	// ErrInvalidRange indicates an attempt to build a range whose start is
	// past its end.
	ErrInvalidRange = errors.New("mem: range start exceeds range end")

	// ErrRangeOverflow indicates a start/size pair that does not fit in the
	// 64-bit address space.
	ErrRangeOverflow = errors.New("mem: range exceeds the address space")

	// ErrEmptyRange indicates a start/size pair with a zero size.
	ErrEmptyRange = errors.New("mem: range size must be at least one byte")
)
