package arena

import (
	"fmt"

	"github.com/doublevil/memkit/mem"
)

// Arena partitions one externally allocated memory region into
// non-overlapping reservations.
type Arena struct {
	rng          mem.AddressRange
	executable   bool
	release      func() error
	reservations []*Reservation
	disposed     bool
}

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithExecutable marks the arena's region as executable. The flag is
// informational: protection is the region provider's business.
func WithExecutable(executable bool) Option {
	return func(a *Arena) { a.executable = executable }
}

// WithRelease sets the callback invoked exactly once when the arena is
// disposed, after all reservations are gone. It typically returns the
// underlying region to whoever allocated it.
func WithRelease(release func() error) Option {
	return func(a *Arena) { a.release = release }
}

// New builds an arena over an already allocated region.
func New(rng mem.AddressRange, opts ...Option) *Arena {
	a := &Arena{rng: rng}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Range returns the full region the arena manages.
func (a *Arena) Range() mem.AddressRange {
	a.mustBeLive()
	return a.rng
}

// IsExecutable reports whether the region was provided as executable.
func (a *Arena) IsExecutable() bool {
	a.mustBeLive()
	return a.executable
}

// IsDisposed reports whether the arena has been disposed.
func (a *Arena) IsDisposed() bool { return a.disposed }

// Reservations returns the live reservations, in their tracking order.
func (a *Arena) Reservations() []*Reservation {
	a.mustBeLive()
	out := make([]*Reservation, len(a.reservations))
	copy(out, a.reservations)
	return out
}

// freeRanges folds every live reservation out of the full range. The
// result is pairwise disjoint and sorted by ascending start address.
func (a *Arena) freeRanges() []mem.AddressRange {
	free := []mem.AddressRange{a.rng}
	for _, r := range a.reservations {
		next := free[:0:0]
		for _, f := range free {
			next = append(next, f.Exclude(r.rng)...)
		}
		free = next
	}
	return free
}

// LargestReservableSpace returns the biggest free range, ties broken by
// lowest start address. The second result is false when the arena is full.
func (a *Arena) LargestReservableSpace() (mem.AddressRange, bool) {
	a.mustBeLive()
	var best mem.AddressRange
	found := false
	for _, f := range a.freeRanges() {
		if !found || f.Size() > best.Size() {
			best = f
			found = true
		}
	}
	return best, found
}

// NextRangeFittingSize returns the first free range, by ascending start
// address, that can hold size bytes at the given alignment. The size is
// rounded up to the alignment boundary first and the result is trimmed to
// exactly that adjusted size, starting on an alignment multiple. The
// second result is false when nothing fits.
func (a *Arena) NextRangeFittingSize(size, alignment uint64) (mem.AddressRange, bool) {
	a.mustBeLive()
	if size == 0 {
		return mem.AddressRange{}, false
	}
	adjusted := mem.Align(size, alignment)
	if adjusted < size {
		// The round-up wrapped past the top of the address space; no range
		// can hold it.
		return mem.AddressRange{}, false
	}
	for _, f := range a.freeRanges() {
		aligned, ok := f.AlignedTo(alignment)
		if !ok || aligned.Size() < adjusted {
			continue
		}
		return mem.AddressRange{Start: aligned.Start, End: aligned.Start + adjusted - 1}, true
	}
	return mem.AddressRange{}, false
}

// ReserveRange reserves size bytes at the given alignment, failing with
// ErrInsufficientMemory when no free range fits. A zero size fails with
// ErrInvalidArgument. The arena performs no OS allocation: the region
// already exists, only the bookkeeping changes.
func (a *Arena) ReserveRange(size, alignment uint64) (*Reservation, error) {
	a.mustBeLive()
	if size == 0 {
		return nil, fmt.Errorf("%w: cannot reserve zero bytes", ErrInvalidArgument)
	}
	rng, ok := a.NextRangeFittingSize(size, alignment)
	if !ok {
		return nil, fmt.Errorf("%w: size=%#x alignment=%d", ErrInsufficientMemory, size, alignment)
	}
	r := &Reservation{arena: a, rng: rng}
	a.reservations = append(a.reservations, r)
	return r, nil
}

// TryReserveRange is ReserveRange with an ok-style result instead of an
// error. It still treats a zero size as unreservable.
func (a *Arena) TryReserveRange(size, alignment uint64) (*Reservation, bool) {
	r, err := a.ReserveRange(size, alignment)
	if err != nil {
		return nil, false
	}
	return r, true
}

// FreeRange releases an arbitrary sub-range, whether or not it lines up
// with reservation boundaries. Reservations fully covered by rng are
// disposed; reservations cut at one edge are replaced by their remainder;
// reservations with an interior hole are replaced by the two remainders.
// In every affected case the original reservation handle becomes disposed.
func (a *Arena) FreeRange(rng mem.AddressRange) {
	a.mustBeLive()
	kept := a.reservations[:0:0]
	for _, r := range a.reservations {
		pieces := r.rng.Exclude(rng)
		if len(pieces) == 1 && pieces[0] == r.rng {
			kept = append(kept, r)
			continue
		}
		r.disposed = true
		for _, piece := range pieces {
			kept = append(kept, &Reservation{arena: a, rng: piece})
		}
	}
	a.reservations = kept
}

// ClearReservations disposes every live reservation.
func (a *Arena) ClearReservations() {
	a.mustBeLive()
	for _, r := range a.reservations {
		r.disposed = true
	}
	a.reservations = nil
}

// Dispose releases the arena: every live reservation is force-disposed,
// then the release callback (when set) hands the region back to its owner.
// Dispose is idempotent; the callback runs at most once.
func (a *Arena) Dispose() error {
	if a.disposed {
		return nil
	}
	a.ClearReservations()
	a.disposed = true
	if a.release != nil {
		return a.release()
	}
	return nil
}

// TotalReservedSpace returns the byte count currently reserved.
func (a *Arena) TotalReservedSpace() uint64 {
	a.mustBeLive()
	var total uint64
	for _, r := range a.reservations {
		total += r.rng.Size()
	}
	return total
}

// RemainingSpace returns the byte count not covered by any reservation.
func (a *Arena) RemainingSpace() uint64 {
	a.mustBeLive()
	var total uint64
	for _, f := range a.freeRanges() {
		total += f.Size()
	}
	return total
}

// remove drops r from the tracking set. Called by Reservation.Dispose;
// harmless when r is already gone.
func (a *Arena) remove(res *Reservation) {
	if a.disposed {
		return
	}
	for i, r := range a.reservations {
		if r == res {
			a.reservations = append(a.reservations[:i], a.reservations[i+1:]...)
			return
		}
	}
}

func (a *Arena) mustBeLive() {
	if a.disposed {
		panic(ErrUseAfterDispose)
	}
}
