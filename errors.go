package keccak

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the parent of every error caused by a bad caller
// argument; match it with errors.Is.
var ErrInvalidArgument = errors.New("keccak: invalid argument")

var (
	// ErrInvalidOutputSize is returned for output sizes outside (0, StateSize].
	ErrInvalidOutputSize = fmt.Errorf("%w: output size", ErrInvalidArgument)
	// ErrNegativeLength is returned by Update for a negative length.
	ErrNegativeLength = fmt.Errorf("%w: negative length", ErrInvalidArgument)
	// ErrOutOfRange is returned by Update when offset and length fall outside data.
	ErrOutOfRange = fmt.Errorf("%w: offset and length out of range", ErrInvalidArgument)
	// ErrInvalidHex is returned by FromHex for malformed input.
	ErrInvalidHex = errors.New("keccak: invalid hex input")
)

// InvariantError is the panic value raised when a rate, output size or
// remainder would not fit the fixed padding scratch area. It signals a
// programming error and is not meant to be recovered.
type InvariantError struct {
	Rate       int
	OutputSize int
	Remainder  int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("keccak: bad use: rate=%d output=%d remainder=%d scratch=%d",
		e.Rate, e.OutputSize, e.Remainder, scratchSize)
}

func invalidSize(size int) error {
	return fmt.Errorf("%w: %d (want 0 < size <= %d)", ErrInvalidOutputSize, size, StateSize)
}
