// Package region provides a local, in-process region provider for arenas:
// a block of memory with a real address range, an executable flag, and a
// release call. On unix platforms the block is mmap'd so the executable
// flag is honored at the page level; elsewhere it falls back to a plain
// heap allocation.
//
// The package exists for callers that want to exercise arenas and
// pointer-path evaluation against memory they own — typically tests and
// same-process tooling. Allocating inside another process is out of scope
// and stays with the surrounding code.
package region

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/doublevil/memkit/mem"
	"github.com/doublevil/memkit/mem/arena"
	"github.com/doublevil/memkit/mem/pointerpath"
)

// Region is a locally allocated block of memory. Its addresses are real:
// Range().Start is where the bytes live in the current process.
type Region struct {
	data       []byte
	executable bool
	release    func([]byte) error
	released   bool
}

// Allocate obtains size bytes of fresh memory. When executable is true the
// pages are mapped with execute permission on platforms that support it;
// the fallback implementation rejects the request instead of lying about
// page protection.
func Allocate(size uint64, executable bool) (*Region, error) {
	if size == 0 {
		return nil, fmt.Errorf("region: cannot allocate zero bytes")
	}
	data, release, err := allocate(size, executable)
	if err != nil {
		return nil, fmt.Errorf("region: allocating %#x bytes: %w", size, err)
	}
	return &Region{data: data, executable: executable, release: release}, nil
}

// Range returns the addresses the region occupies in this process.
func (r *Region) Range() mem.AddressRange {
	start := uint64(uintptr(unsafe.Pointer(unsafe.SliceData(r.data))))
	return mem.AddressRange{Start: start, End: start + uint64(len(r.data)) - 1}
}

// IsExecutable reports whether the region was mapped executable.
func (r *Region) IsExecutable() bool { return r.executable }

// Bytes exposes the raw memory. The slice stays valid until Release.
func (r *Region) Bytes() []byte { return r.data }

// Release returns the memory to the OS. Idempotent.
func (r *Region) Release() error {
	if r.released {
		return nil
	}
	r.released = true
	if r.release == nil {
		return nil
	}
	return r.release(r.data)
}

// NewArena builds an arena over the whole region. Disposing the arena
// releases the region.
func (r *Region) NewArena() *arena.Arena {
	return arena.New(r.Range(),
		arena.WithExecutable(r.executable),
		arena.WithRelease(r.Release))
}

// Reader returns a pointer-sized memory reader over the region for the
// given bitness, suitable as the evaluator's MemoryReader collaborator.
// Reads outside the region fail.
func (r *Region) Reader(bits mem.Bitness) pointerpath.MemoryReader {
	return pointerpath.MemoryReaderFunc(func(addr uint64) (uint64, error) {
		buf, err := r.slice(addr, uint64(bits.PointerSize()))
		if err != nil {
			return 0, err
		}
		if bits == mem.Bits32 {
			return uint64(binary.LittleEndian.Uint32(buf)), nil
		}
		return binary.LittleEndian.Uint64(buf), nil
	})
}

// WritePointer stores value at addr with the width of the given bitness.
func (r *Region) WritePointer(addr uint64, value uint64, bits mem.Bitness) error {
	buf, err := r.slice(addr, uint64(bits.PointerSize()))
	if err != nil {
		return err
	}
	if bits == mem.Bits32 {
		if value > 0xFFFFFFFF {
			return fmt.Errorf("region: value %#x does not fit a 32-bit pointer", value)
		}
		binary.LittleEndian.PutUint32(buf, uint32(value))
		return nil
	}
	binary.LittleEndian.PutUint64(buf, value)
	return nil
}

// slice maps an absolute address span onto the backing slice.
func (r *Region) slice(addr, size uint64) ([]byte, error) {
	rng := r.Range()
	if addr < rng.Start || addr > rng.End || rng.End-addr+1 < size {
		return nil, fmt.Errorf("region: %#x+%d outside %s", addr, size, rng)
	}
	off := addr - rng.Start
	return r.data[off : off+size], nil
}
