package bitarray

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Roaring interop. Roaring suits long-lived sparse sets; BitArray
// suits dense fixed-size windows that need in-place rotation. The two
// convert losslessly in both directions.

// ToRoaring returns a Roaring bitmap holding the indices of all set
// bits.
func (b *BitArray) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.NewBitmap()

	for byteIdx, v := range b.Bytes() {
		base := uint64(byteIdx) * 8
		for v != 0 {
			rb.Add(base + uint64(bits.TrailingZeros8(v)))
			v &= v - 1
		}
	}

	return rb
}

// FromRoaring creates a BitArray holding size bits with exactly the
// bits of rb set. It panics if rb contains an index >= size.
func FromRoaring(rb *roaring64.Bitmap, size uint64) *BitArray {
	b := New(size)

	it := rb.Iterator()
	for it.HasNext() {
		i := it.Next()
		if i >= size {
			panic(fmt.Sprintf("bitarray: roaring index %d out of range [0, %d)", i, size))
		}
		b.buf[i/8] |= bitMask(i)
	}

	return b
}
