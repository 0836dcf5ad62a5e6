package arena

import "errors"

var (
	// ErrInsufficientMemory indicates that no free range in the arena fits
	// the requested size and alignment. Recoverable: free space or ask for
	// less.
	ErrInsufficientMemory = errors.New("arena: no free range fits the requested size")

	// ErrInvalidArgument indicates a request that can never be satisfied,
	// such as shrinking a reservation by its full size or reserving zero
	// bytes.
	ErrInvalidArgument = errors.New("arena: invalid argument")

	// ErrUseAfterDispose is the panic value for any operation on a disposed
	// arena or reservation. This is a programmer error and is deliberately
	// not recoverable through the error return path.
	ErrUseAfterDispose = errors.New("arena: use after dispose")
)
