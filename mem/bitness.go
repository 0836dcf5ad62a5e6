package mem

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Bitness identifies the pointer width of a target process. It decides how
// many bytes a pointer read covers and the highest address a resolved path
// may produce.
type Bitness uint8

const (
	// Bits32 is a 32-bit target: 4-byte pointers, 4 GiB address ceiling.
	Bits32 Bitness = iota

	// Bits64 is a 64-bit target: 8-byte pointers, full 64-bit ceiling.
	Bits64
)

// PointerSize returns the pointer width in bytes for the target.
func (b Bitness) PointerSize() int {
	if b == Bits32 {
		return 4
	}
	return 8
}

// MaxAddress returns the highest address representable on the target.
func (b Bitness) MaxAddress() uint64 {
	if b == Bits32 {
		return math.MaxUint32
	}
	return math.MaxUint64
}

// IsValidAddress reports whether addr is representable on the target.
func (b Bitness) IsValidAddress(addr uint64) bool {
	return addr <= b.MaxAddress()
}

// String returns "32-bit" or "64-bit".
func (b Bitness) String() string {
	if b == Bits32 {
		return "32-bit"
	}
	return "64-bit"
}

// Align returns v rounded up to the next multiple of boundary.
// Boundaries of zero or one return v unchanged. The boundary does not need
// to be a power of two.
//
// The round-up wraps when the next multiple does not fit the integer type,
// leaving the result smaller than v; callers that cannot tolerate a wrap
// must check for that.
func Align[I constraints.Integer](v, boundary I) I {
	if boundary <= 1 {
		return v
	}
	rem := v % boundary
	if rem == 0 {
		return v
	}
	return v + (boundary - rem)
}
