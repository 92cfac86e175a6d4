package bitarray

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WriteTo writes the array in its raw packed layout: a little-endian
// uint64 bit count followed by ceil(Len()/8) packed bytes, bit 0 in
// the least significant position of the first payload byte.
func (b *BitArray) WriteTo(w io.Writer) (int64, error) {
	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], b.size)

	if _, err := w.Write(hdr[:]); err != nil {
		return 0, fmt.Errorf("bitarray: write header: %w", err)
	}
	n := int64(len(hdr))

	written, err := w.Write(b.Bytes())
	n += int64(written)
	if err != nil {
		return n, fmt.Errorf("bitarray: write payload: %w", err)
	}

	return n, nil
}

// ReadFrom replaces the array's contents with one read from r in the
// WriteTo layout. The array takes on the encoded bit count; bits of
// the final payload byte past that count are discarded.
func (b *BitArray) ReadFrom(r io.Reader) (int64, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, fmt.Errorf("bitarray: read header: %w", err)
	}
	n := int64(len(hdr))

	size := binary.LittleEndian.Uint64(hdr[:])
	if size > math.MaxUint64-7 || bufLen(size) > uint64(math.MaxInt) {
		return n, fmt.Errorf("bitarray: %w: %d bits", ErrSizeOverflow, size)
	}

	buf := make([]byte, bufLen(size))
	read, err := io.ReadFull(r, buf[:byteLen(size)])
	n += int64(read)
	if err != nil {
		return n, fmt.Errorf("bitarray: read payload: %w", err)
	}

	b.buf = buf
	b.size = size
	b.maskSlack()

	return n, nil
}
