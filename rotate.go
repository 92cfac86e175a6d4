package bitarray

import "fmt"

// Rotate rotates the bit range [offset, offset+length) right by
// rightAmount positions, in place and without allocating. Negative
// amounts rotate left; any magnitude is accepted and reduced modulo
// length. A zero-length range is a no-op. It panics if the range
// extends past Len().
//
// The implementation is the three-reversal identity: with
// split = length - amount, reversing [offset, offset+split) and
// [offset+split, offset+length) independently and then reversing the
// whole range right-rotates it by amount.
func (b *BitArray) Rotate(offset, length uint64, rightAmount int64) {
	if end := offset + length; end < offset || end > b.size {
		panic(fmt.Sprintf("bitarray: range [%d, %d+%d) out of range [0, %d)", offset, offset, length, b.size))
	}

	if length == 0 {
		return
	}

	amount := normalizeAmount(rightAmount, length)
	if amount == 0 {
		return
	}

	split := length - amount
	b.reverseRange(offset, split)
	b.reverseRange(offset+split, amount)
	b.reverseRange(offset, length)
}

// normalizeAmount reduces a signed right-rotation amount into
// [0, length). The uint64 conversion of the negated amount is exact
// even for math.MinInt64 (two's-complement wrap yields 1<<63, the
// correct magnitude).
func normalizeAmount(rightAmount int64, length uint64) uint64 {
	if rightAmount >= 0 {
		return uint64(rightAmount) % length
	}

	return (length - uint64(-rightAmount)%length) % length
}
