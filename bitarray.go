package bitarray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

// BitArray is a fixed-size packed array of bits.
//
// The zero value is an empty array; use New or NewFromBytes to create
// one with capacity. A BitArray is not safe for concurrent use.
type BitArray struct {
	// buf holds ceil(size/8) packed bytes plus one guard byte so the
	// unaligned word accessors can always touch a full 9-byte span
	// (see word.go).
	buf []byte

	// size is the number of addressable bits, fixed for the lifetime
	// of the array.
	size uint64
}

// New creates a BitArray holding size bits, all zero.
func New(size uint64) *BitArray {
	return &BitArray{
		buf:  make([]byte, bufLen(size)),
		size: size,
	}
}

// NewFromBytes creates a BitArray holding size bits copied from a
// packed buffer (bit 0 = least significant bit of data[0]). data must
// hold at least ceil(size/8) bytes; bits of the final byte past size
// are discarded. It panics if data is too short.
func NewFromBytes(data []byte, size uint64) *BitArray {
	nbytes := byteLen(size)
	if uint64(len(data)) < nbytes {
		panic(fmt.Sprintf("bitarray: %d bytes cannot hold %d bits", len(data), size))
	}

	b := New(size)
	copy(b.buf, data[:nbytes])
	b.maskSlack()

	return b
}

// Len returns the number of bits in the array.
func (b *BitArray) Len() uint64 {
	return b.size
}

// Get returns the bit at index i. It panics if i >= Len().
func (b *BitArray) Get(i uint64) bool {
	b.checkIndex(i)
	return b.buf[i/8]&bitMask(i) != 0
}

// Set writes the bit at index i, leaving every other bit of its byte
// unchanged. It panics if i >= Len().
func (b *BitArray) Set(i uint64, v bool) {
	b.checkIndex(i)
	if v {
		b.buf[i/8] |= bitMask(i)
	} else {
		b.buf[i/8] &^= bitMask(i)
	}
}

// Count returns the number of set bits.
func (b *BitArray) Count() int {
	buf := b.Bytes()
	count := 0

	i := 0
	for ; i+8 <= len(buf); i += 8 {
		count += bits.OnesCount64(binary.LittleEndian.Uint64(buf[i:]))
	}
	for ; i < len(buf); i++ {
		count += bits.OnesCount8(buf[i])
	}

	return count
}

// ClearAll resets every bit to zero.
func (b *BitArray) ClearAll() {
	clear(b.buf)
}

// Bytes returns the packed backing buffer: ceil(Len()/8) bytes with
// bit 0 in the least significant position of the first byte. This is
// the array's natural persistence representation.
//
// The slice aliases the array's storage; callers that write through it
// must not set bits past Len().
func (b *BitArray) Bytes() []byte {
	return b.buf[:byteLen(b.size)]
}

// Clone returns a deep copy of the array.
func (b *BitArray) Clone() *BitArray {
	c := New(b.size)
	copy(c.buf, b.buf)
	return c
}

// Equal reports whether both arrays have the same length and the same
// bit values.
func (b *BitArray) Equal(other *BitArray) bool {
	if b.size != other.size {
		return false
	}
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// String renders the array with index 0 leftmost, one '1' or '0' per
// bit.
func (b *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(int(b.size))

	for i := uint64(0); i < b.size; i++ {
		if b.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func (b *BitArray) checkIndex(i uint64) {
	if i >= b.size {
		panic(fmt.Sprintf("bitarray: index %d out of range [0, %d)", i, b.size))
	}
}

// maskSlack zeroes the bits of the final byte past size. Internal
// invariant: slack bits and the guard byte stay zero (no operation
// sets them), so Count and Equal can work on whole bytes.
func (b *BitArray) maskSlack() {
	if off := b.size % 8; off != 0 {
		b.buf[b.size/8] &= 1<<off - 1
	}
}

// bitMask selects bit i within its byte.
func bitMask(i uint64) byte {
	return 1 << (i % 8)
}

// byteLen returns the number of bytes needed to hold size bits.
func byteLen(size uint64) uint64 {
	return (size + 7) / 8
}

// bufLen adds the guard byte for the unaligned word accessors.
func bufLen(size uint64) uint64 {
	return byteLen(size) + 1
}
