package pointerpath

import (
	"fmt"
	"math"
)

// Offset is a signed pointer offset produced by folding the +/- terms of
// one path segment. Its magnitude may occupy the full 64-bit range, which a
// plain int64 cannot represent, so sign and magnitude are kept apart.
//
// Offset is an immutable value type.
type Offset struct {
	abs uint64
	neg bool
}

// NewOffset builds an offset from a magnitude and sign. A zero magnitude is
// normalized to the positive zero offset.
func NewOffset(magnitude uint64, negative bool) Offset {
	if magnitude == 0 {
		negative = false
	}
	return Offset{abs: magnitude, neg: negative}
}

// Magnitude returns the absolute value of the offset.
func (o Offset) Magnitude() uint64 { return o.abs }

// Negative reports whether the offset is below zero.
func (o Offset) Negative() bool { return o.neg }

// Exceeds32Bits reports whether the magnitude is above the 32-bit ceiling.
func (o Offset) Exceeds32Bits() bool { return o.abs > math.MaxUint32 }

// Apply adds the offset to addr. The second result is false when the sum
// underflows zero or overflows the 64-bit address space.
func (o Offset) Apply(addr uint64) (uint64, bool) {
	if o.neg {
		if o.abs > addr {
			return 0, false
		}
		return addr - o.abs, true
	}
	if o.abs > math.MaxUint64-addr {
		return 0, false
	}
	return addr + o.abs, true
}

// String renders the offset as signed hexadecimal, e.g. "1A" or "-8".
func (o Offset) String() string {
	if o.neg {
		return fmt.Sprintf("-%X", o.abs)
	}
	return fmt.Sprintf("%X", o.abs)
}
