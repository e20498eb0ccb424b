package callback

import "errors"

// Sentinel kinds for binding and dispatch errors.
var (
	ErrInvalidBinding = errors.New("invalid binding")
	ErrOutputBound    = errors.New("output already bound")
	ErrUnknownInput   = errors.New("unknown input")
	ErrInvalidValue   = errors.New("invalid input value")
)
