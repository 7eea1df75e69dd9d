package csf

import "errors"

// Errors reported by the binary reader and writer. I/O failures are wrapped
// with their underlying cause instead of using these sentinels.
var (
	ErrInvalidFormat = errors.New("not a valid csf string table")
	ErrNonASCIIName  = errors.New("label name contains non-ascii characters")
	ErrBadTag        = errors.New("record tag must be exactly 4 bytes")
)
