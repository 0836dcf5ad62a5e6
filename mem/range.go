package mem

import (
	"fmt"
	"math"
)

// AddressRange is an inclusive [Start, End] interval of addresses.
// The zero value is the single-byte range at address zero.
//
// AddressRange is immutable: transformations return new values.
type AddressRange struct {
	// Start is the first address covered by the range.
	Start uint64

	// End is the last address covered by the range (inclusive).
	End uint64
}

// NewRange builds a range from its first and last address.
// Fails with ErrInvalidRange when start is past end.
func NewRange(start, end uint64) (AddressRange, error) {
	if start > end {
		return AddressRange{}, fmt.Errorf("%w: start=%#x end=%#x", ErrInvalidRange, start, end)
	}
	return AddressRange{Start: start, End: end}, nil
}

// RangeFromStartAndSize builds the range covering size bytes from start.
// Fails with ErrEmptyRange for a zero size and with ErrRangeOverflow when
// start+size does not fit in the address space.
func RangeFromStartAndSize(start, size uint64) (AddressRange, error) {
	if size == 0 {
		return AddressRange{}, fmt.Errorf("%w: start=%#x", ErrEmptyRange, start)
	}
	if size-1 > math.MaxUint64-start {
		return AddressRange{}, fmt.Errorf("%w: start=%#x size=%#x", ErrRangeOverflow, start, size)
	}
	return AddressRange{Start: start, End: start + size - 1}, nil
}

// Size returns the number of addresses covered by the range.
// A range spanning the whole 64-bit space saturates at math.MaxUint64
// because its true size does not fit in a uint64.
func (r AddressRange) Size() uint64 {
	span := r.End - r.Start
	if span == math.MaxUint64 {
		return math.MaxUint64
	}
	return span + 1
}

// Contains reports whether addr falls inside the range.
func (r AddressRange) Contains(addr uint64) bool {
	return addr >= r.Start && addr <= r.End
}

// Overlaps reports whether the two ranges share at least one address.
func (r AddressRange) Overlaps(other AddressRange) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// Intersect returns the overlapping part of the two ranges.
// The second result is false when they are disjoint.
func (r AddressRange) Intersect(other AddressRange) (AddressRange, bool) {
	if !r.Overlaps(other) {
		return AddressRange{}, false
	}
	out := r
	if other.Start > out.Start {
		out.Start = other.Start
	}
	if other.End < out.End {
		out.End = other.End
	}
	return out, true
}

// Exclude returns the parts of r not covered by other.
//
// Disjoint ranges return r unchanged as the single element. An overlap
// touching only one edge returns one remainder. A strictly interior overlap
// punches a hole and returns the left and right remainders, in address
// order. A full cover returns nothing.
func (r AddressRange) Exclude(other AddressRange) []AddressRange {
	overlap, ok := r.Intersect(other)
	if !ok {
		return []AddressRange{r}
	}
	out := make([]AddressRange, 0, 2)
	if overlap.Start > r.Start {
		out = append(out, AddressRange{Start: r.Start, End: overlap.Start - 1})
	}
	if overlap.End < r.End {
		out = append(out, AddressRange{Start: overlap.End + 1, End: r.End})
	}
	return out
}

// AlignedTo returns the range with its start rounded up to the next multiple
// of alignment, keeping the same end. The second result is false when the
// rounded start would pass the end of the range or overflow the address
// space. Alignments of zero or one leave the range unchanged.
func (r AddressRange) AlignedTo(alignment uint64) (AddressRange, bool) {
	if alignment <= 1 {
		return r, true
	}
	rem := r.Start % alignment
	if rem == 0 {
		return r, true
	}
	bump := alignment - rem
	if bump > math.MaxUint64-r.Start {
		return AddressRange{}, false
	}
	start := r.Start + bump
	if start > r.End {
		return AddressRange{}, false
	}
	return AddressRange{Start: start, End: r.End}, true
}

// String renders the range as "[0x...-0x...]".
func (r AddressRange) String() string {
	return fmt.Sprintf("[%#x-%#x]", r.Start, r.End)
}
