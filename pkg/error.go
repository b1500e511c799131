package pkg

import "errors"

// Storage layer errors.
var (
	// ErrOverflow indicates address arithmetic would wrap the 32-bit
	// address space.
	ErrOverflow = errors.New("address overflow")

	// ErrAlignment indicates a write address or size that is not a
	// multiple of the backend sector size.
	ErrAlignment = errors.New("unaligned address or size")

	// ErrInvalidArgument indicates an invalid parameter was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyInitialized indicates a storage handle is already open.
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrNotInitialized indicates no storage handle is open.
	ErrNotInitialized = errors.New("not initialized")

	// ErrNoMemory indicates insufficient memory.
	ErrNoMemory = errors.New("insufficient memory")

	// ErrReadOnly indicates a write to read-only media.
	ErrReadOnly = errors.New("media is read-only")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrOutOfRange indicates an access past the end of the media.
	ErrOutOfRange = errors.New("address out of range")

	// ErrNotSupported indicates an unsupported operation or command.
	ErrNotSupported = errors.New("not supported")
)
