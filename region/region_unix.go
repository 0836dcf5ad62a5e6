//go:build unix

package region

import (
	"math"

	"golang.org/x/sys/unix"
)

// allocate maps anonymous pages, adding PROT_EXEC when executable. The
// release function unmaps them; a double-unmap surfaces from the kernel as
// EINVAL and is not masked here because Release already guards against it.
func allocate(size uint64, executable bool) ([]byte, func([]byte) error, error) {
	if size > math.MaxInt {
		return nil, nil, unix.ENOMEM
	}
	prot := unix.PROT_READ | unix.PROT_WRITE
	if executable {
		prot |= unix.PROT_EXEC
	}
	data, err := unix.Mmap(-1, 0, int(size), prot, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}
