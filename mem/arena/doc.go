// Package arena manages non-overlapping reservations inside one contiguous
// memory region obtained from a target process.
//
// # Overview
//
// An Arena does no OS allocation of its own: it receives an already
// allocated address range (and an optional release callback invoked on
// disposal) and hands out Reservations — sub-ranges guaranteed disjoint
// from every other live reservation in the same arena.
//
//	a := arena.New(region, arena.WithRelease(releaseRegion))
//	r, err := a.ReserveRange(0x40, 8)
//	if err != nil {
//	    return err
//	}
//	// write data or code at r.Range().Start ...
//	r.Dispose() // space becomes reservable again
//
// # Free-Space Discovery
//
// Free space is recomputed on every query by excluding each live
// reservation's range from the arena's full range. This trades CPU for
// simplicity: the free set is always fragmentation-correct and pairwise
// disjoint regardless of reservation order. Callers with very large
// reservation counts would want an interval tree instead; the API makes no
// promise about query cost.
//
// # Fitting Policy
//
// ReserveRange is first-fit by ascending start address, not best-fit by
// size: requested sizes are rounded up to the alignment boundary, each free
// range is aligned and the first one that still accommodates the adjusted
// size wins, trimmed to exactly that size. Ties for the largest free block
// go to the lowest start address.
//
// # Disposal
//
// Reservations hold a non-owning back-reference to their arena and notify
// it when disposed; disposal is idempotent. Disposing the arena disposes
// every live reservation first, then invokes the release callback exactly
// once. Any other use of a disposed arena or reservation is a programmer
// error and panics with ErrUseAfterDispose rather than returning stale
// data.
//
// # Thread Safety
//
// Arena instances are not thread-safe. Callers must serialize reservation,
// freeing and disposal externally, including Reservation.Dispose calls.
package arena
