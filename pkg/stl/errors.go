package stl

import "errors"

var (
	// ErrFormat indicates structurally malformed STL input: a wrong
	// keyword, a wrong token count, or a missing "solid " header.
	ErrFormat = errors.New("stl: malformed input")
	// ErrNumber indicates an ASCII token that does not parse as a
	// finite float32.
	ErrNumber = errors.New("stl: invalid number")
)
