package bitarray

import "encoding/binary"

// The unaligned word accessors move 64 bits per call regardless of
// byte alignment. Both touch a 9-byte span: 8 bytes for the word plus
// one byte absorbing a sub-byte offset. New allocates one guard byte
// past the nominal ceil(size/8) bytes, so any 64-bit window inside
// [0, Len()) stays in bounds without a branch.

// uint64At returns the 64 bits starting at bit index i, least
// significant bit first. The caller must ensure i+64 <= Len().
func (b *BitArray) uint64At(i uint64) uint64 {
	byteIdx := i / 8
	off := i % 8

	low := binary.LittleEndian.Uint64(b.buf[byteIdx:])
	if off == 0 {
		return low
	}

	high := uint64(b.buf[byteIdx+8])

	return low>>off | high<<(64-off)
}

// setUint64At writes the 64 bits starting at bit index i, preserving
// the low off bits of the first byte and the high 8-off bits of the
// ninth. The caller must ensure i+64 <= Len().
func (b *BitArray) setUint64At(i, v uint64) {
	byteIdx := i / 8
	off := i % 8

	if off == 0 {
		binary.LittleEndian.PutUint64(b.buf[byteIdx:], v)
		return
	}

	low := binary.LittleEndian.Uint64(b.buf[byteIdx:])
	lowMask := uint64(1)<<off - 1
	binary.LittleEndian.PutUint64(b.buf[byteIdx:], low&lowMask|v<<off)

	highMask := byte(0xFF) << off
	b.buf[byteIdx+8] = b.buf[byteIdx+8]&highMask | byte(v>>(64-off))
}
