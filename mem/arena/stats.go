package arena

// Stats describes an arena's space usage and fragmentation at one point in
// time.
type Stats struct {
	// TotalBytes is the size of the whole region the arena manages.
	TotalBytes uint64

	// ReservedBytes is the space covered by live reservations.
	ReservedBytes uint64

	// FreeBytes is the space not covered by any reservation.
	// ReservedBytes + FreeBytes always equals TotalBytes.
	FreeBytes uint64

	// FreeBlocks is the number of disjoint free ranges. More than one block
	// with FreeBytes > 0 means the free space is fragmented.
	FreeBlocks int

	// LargestFreeBlock is the size of the biggest free range, the upper
	// bound on what a single unaligned reservation can get.
	LargestFreeBlock uint64

	// FreePercent is FreeBytes over TotalBytes, in percent.
	FreePercent float64
}

// Stats reports the arena's current usage and fragmentation.
func (a *Arena) Stats() Stats {
	a.mustBeLive()

	s := Stats{TotalBytes: a.rng.Size()}
	for _, f := range a.freeRanges() {
		s.FreeBlocks++
		s.FreeBytes += f.Size()
		if f.Size() > s.LargestFreeBlock {
			s.LargestFreeBlock = f.Size()
		}
	}
	s.ReservedBytes = s.TotalBytes - s.FreeBytes
	if s.TotalBytes > 0 {
		s.FreePercent = float64(s.FreeBytes) / float64(s.TotalBytes) * 100
	}
	return s
}
