package bitarray

import "errors"

var (
	// ErrSizeOverflow is returned by ReadFrom when the encoded bit
	// count would require a buffer larger than this platform can
	// address.
	ErrSizeOverflow = errors.New("encoded bit count overflows buffer size")
)
