package pointerpath

import (
	"errors"
	"fmt"

	"github.com/doublevil/memkit/mem"
)

var (
	// ErrInvalidExpression indicates a malformed pointer-path expression.
	// Parse reports it uniformly for every kind of syntax or range defect.
	ErrInvalidExpression = errors.New("pointerpath: invalid expression")

	// ErrModuleNotFound indicates that the path names a module the target
	// has not loaded.
	ErrModuleNotFound = errors.New("pointerpath: module not found")

	// ErrMemoryRead indicates that a pointer-sized read failed while
	// walking the path.
	ErrMemoryRead = errors.New("pointerpath: memory read failed")

	// ErrIncompatibleBitness indicates an address that is not representable
	// on the target, either because the path requires 64-bit addressing on
	// a 32-bit target or because an intermediate sum left the address space.
	ErrIncompatibleBitness = errors.New("pointerpath: address incompatible with target bitness")
)

// ParseError reports a malformed expression. The message is uniform on
// purpose: callers get the offending expression, not a defect taxonomy.
type ParseError struct {
	Expression string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pointerpath: invalid expression %q", e.Expression)
}

func (e *ParseError) Unwrap() error { return ErrInvalidExpression }

// ModuleNotFoundError reports that module resolution returned nothing.
type ModuleNotFoundError struct {
	Module string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("pointerpath: module %q not found in target", e.Module)
}

func (e *ModuleNotFoundError) Unwrap() error { return ErrModuleNotFound }

// MemoryReadError reports a failed pointer read, carrying the address that
// was being read and the collaborator's underlying error.
type MemoryReadError struct {
	Address uint64
	Err     error
}

func (e *MemoryReadError) Error() string {
	return fmt.Sprintf("pointerpath: reading pointer at %#x: %v", e.Address, e.Err)
}

func (e *MemoryReadError) Unwrap() error { return ErrMemoryRead }

// BitnessError reports an address that left the target's address space.
type BitnessError struct {
	Address uint64
	Bitness mem.Bitness
}

func (e *BitnessError) Error() string {
	return fmt.Sprintf("pointerpath: address %#x is not addressable on a %s target", e.Address, e.Bitness)
}

func (e *BitnessError) Unwrap() error { return ErrIncompatibleBitness }
