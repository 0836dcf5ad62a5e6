// Package mem provides the address-space primitives shared by the rest of
// memkit: inclusive address ranges, target bitness policy, and alignment
// helpers.
//
// # Address Ranges
//
// AddressRange is an immutable, inclusive [Start, End] interval of 64-bit
// addresses. It is a value type: every transformation (exclusion, alignment)
// returns a new range and never mutates the receiver.
//
//	r, _ := mem.NewRange(0x1000, 0x1FFF)
//	r.Contains(0x1800)          // true
//	r.Size()                    // 0x1000
//	left, _ := mem.NewRange(0x1200, 0x12FF)
//	r.Exclude(left)             // [0x1000-0x11FF, 0x1300-0x1FFF]
//
// # Bitness
//
// Bitness captures whether a target process uses 32-bit or 64-bit
// addressing. It decides the pointer size read from the target and the
// highest address a resolved pointer path may legally produce.
//
// # Thread Safety
//
// Everything in this package is an immutable value; values may be shared
// freely across goroutines.
package mem
