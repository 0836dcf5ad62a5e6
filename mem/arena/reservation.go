package arena

import (
	"fmt"

	"github.com/doublevil/memkit/mem"
)

// Reservation is a sub-range of an arena, disjoint from every other live
// reservation in the same arena. It holds a non-owning back-reference used
// only to notify the arena on disposal.
type Reservation struct {
	arena    *Arena
	rng      mem.AddressRange
	disposed bool
}

// Range returns the addresses the reservation covers.
func (r *Reservation) Range() mem.AddressRange {
	r.mustBeLive()
	return r.rng
}

// Size returns the reservation's size in bytes.
func (r *Reservation) Size() uint64 {
	r.mustBeLive()
	return r.rng.Size()
}

// IsDisposed reports whether the reservation has been disposed.
func (r *Reservation) IsDisposed() bool { return r.disposed }

// Shrink narrows the reservation's end by byteCount, freeing the tail for
// reuse. Shrinking by the full size or more fails with ErrInvalidArgument:
// a reservation never becomes empty through Shrink — dispose it instead.
// A reservation can never grow back.
func (r *Reservation) Shrink(byteCount uint64) error {
	r.mustBeLive()
	if byteCount >= r.rng.Size() {
		return fmt.Errorf("%w: cannot shrink a %d byte reservation by %d bytes", ErrInvalidArgument, r.rng.Size(), byteCount)
	}
	r.rng.End -= byteCount
	return nil
}

// Dispose removes the reservation from its arena, making its range
// reservable again. Idempotent.
func (r *Reservation) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.arena.remove(r)
}

func (r *Reservation) mustBeLive() {
	if r.disposed {
		panic(ErrUseAfterDispose)
	}
}

// String renders the reservation for diagnostics.
func (r *Reservation) String() string {
	if r.disposed {
		return "reservation(disposed)"
	}
	return fmt.Sprintf("reservation%s", r.rng)
}
