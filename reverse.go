package bitarray

import "math/bits"

// reverseRange reverses the bits of [start, start+length) in place:
// the bit at start+k swaps with the bit at start+length-1-k.
//
// Bulk phase: while at least 128 unreversed bits remain, read a 64-bit
// window at the left edge and one ending at the right edge, bit-reverse
// both words, and cross-write them. Tail phase: finish the residual
// span with pairwise bit swaps. After the bulk phase the residual
// [left, right) holds exactly the bits still awaiting reversal, so the
// two phases together reverse the span exactly once.
func (b *BitArray) reverseRange(start, length uint64) {
	left := start
	right := start + length
	remaining := length

	for remaining >= 128 {
		leftWord := b.uint64At(left)
		rightWord := b.uint64At(right - 64)

		b.setUint64At(right-64, bits.Reverse64(leftWord))
		b.setUint64At(left, bits.Reverse64(rightWord))

		left += 64
		right -= 64
		remaining -= 128
	}

	// The middle bit of an odd-length remainder maps to itself.
	mid := left + remaining/2
	for i := left; i < mid; i++ {
		j := right - 1 - (i - left)

		tmp := b.Get(i)
		b.Set(i, b.Get(j))
		b.Set(j, tmp)
	}
}
