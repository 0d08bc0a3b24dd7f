package elffmt

import "errors"

var (
	// ErrBadMagic indicates the buffer does not begin with the ELF
	// signature.
	ErrBadMagic = errors.New("elffmt: bad magic")

	// ErrBadClass indicates the class byte is neither Class32 nor
	// Class64.
	ErrBadClass = errors.New("elffmt: unsupported class")

	// ErrTruncated indicates the buffer ends before a fixed-size header
	// is complete.
	ErrTruncated = errors.New("elffmt: truncated header")

	// ErrOutOfBounds indicates an offset or size field points outside the
	// buffer.
	ErrOutOfBounds = errors.New("elffmt: field out of bounds")
)
