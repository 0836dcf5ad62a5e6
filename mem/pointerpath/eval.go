package pointerpath

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/doublevil/memkit/internal/logging"
	"github.com/doublevil/memkit/mem"
)

// ModuleResolver resolves a module name to its load address in the target.
// The second result is false when the module is not loaded.
type ModuleResolver interface {
	ResolveModuleBase(name string) (uint64, bool)
}

// MemoryReader reads a pointer-sized value from the target's memory. The
// width of the read (4 or 8 bytes) follows the target's bitness.
type MemoryReader interface {
	ReadPointer(addr uint64) (uint64, error)
}

// ModuleResolverFunc adapts a function to the ModuleResolver interface.
type ModuleResolverFunc func(name string) (uint64, bool)

func (f ModuleResolverFunc) ResolveModuleBase(name string) (uint64, bool) { return f(name) }

// MemoryReaderFunc adapts a function to the MemoryReader interface.
type MemoryReaderFunc func(addr uint64) (uint64, error)

func (f MemoryReaderFunc) ReadPointer(addr uint64) (uint64, error) { return f(addr) }

// Evaluator resolves parsed paths against a live target through its two
// collaborators. Evaluation is synchronous and performs no retries; the
// first failure is returned and no partial address is ever produced.
//
// Logger is optional hop tracing at debug level; nil disables it.
type Evaluator struct {
	Resolver ModuleResolver
	Reader   MemoryReader
	Bitness  mem.Bitness
	Logger   *logrus.Entry
}

// Evaluate walks p to a final address in the target.
//
// The module base (or zero) plus the base offset seeds the walk. Every
// pointer offset then triggers one pointer-sized read of the current
// address; the value read plus the offset becomes the next address. The
// final address is returned without being dereferenced.
//
// On a 32-bit target a path marked Strictly64Bit fails eagerly, before any
// collaborator call. Every intermediate address is checked against the
// target's ceiling; leaving the address space fails with a BitnessError.
func (e *Evaluator) Evaluate(p *Path) (uint64, error) {
	log := logging.OrDiscard(e.Logger)

	if p.Strictly64Bit && e.Bitness == mem.Bits32 {
		return 0, fmt.Errorf("%w: expression %q requires 64-bit addressing", ErrIncompatibleBitness, p.Expression)
	}

	var current uint64
	if p.HasModule() {
		base, ok := e.Resolver.ResolveModuleBase(p.ModuleName)
		if !ok {
			return 0, &ModuleNotFoundError{Module: p.ModuleName}
		}
		log.Debugf("module %q resolved to %#x", p.ModuleName, base)
		current = base
	}

	current, err := e.applyOffset(current, NewOffset(p.BaseOffset, false))
	if err != nil {
		return 0, err
	}
	log.Debugf("base address %#x", current)

	for i, off := range p.PointerOffsets {
		value, err := e.Reader.ReadPointer(current)
		if err != nil {
			return 0, &MemoryReadError{Address: current, Err: err}
		}
		log.Debugf("hop %d: *(%#x) = %#x, offset %s", i, current, value, off)

		current, err = e.applyOffset(value, off)
		if err != nil {
			return 0, err
		}
	}

	log.Debugf("final address %#x", current)
	return current, nil
}

// applyOffset adds off to addr, failing when the sum leaves the target's
// address space in either direction.
func (e *Evaluator) applyOffset(addr uint64, off Offset) (uint64, error) {
	sum, ok := off.Apply(addr)
	if !ok {
		return 0, fmt.Errorf("%w: offset %s applied to %#x leaves the address space", ErrIncompatibleBitness, off, addr)
	}
	if !e.Bitness.IsValidAddress(sum) {
		return 0, &BitnessError{Address: sum, Bitness: e.Bitness}
	}
	return sum, nil
}
