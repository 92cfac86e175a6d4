// Package bitarray provides a fixed-size packed array of bits with
// in-place rotation of arbitrary sub-ranges.
//
// A BitArray stores bits 8 per byte and supports O(1) point reads and
// writes plus Rotate, which rotates any bit range [offset, offset+length)
// right (or left, for negative amounts) without allocating.
//
// # Memory Layout
//
//	┌──────────┬───────────┬────────────┬─────┬──────────┬───────┐
//	│  byte 0  │  byte 1   │   byte 2   │ ... │ byte n-1 │ guard │
//	│ bits 0-7 │ bits 8-15 │ bits 16-23 │     │          │       │
//	└──────────┴───────────┴────────────┴─────┴──────────┴───────┘
//
// Bit i lives in byte i/8 at position i%8, with position 0 the least
// significant bit of its byte. The trailing guard byte lets the
// internal word accessors read and write 9-byte spans at any bit
// offset without a bounds branch; it is never visible through Bytes.
//
// # Rotation
//
// Rotate uses the three-reversal identity: reversing the two blocks of
// a split range independently and then reversing the whole range
// right-rotates the range by the size of the second block. In its bulk
// phase each reversal processes 128 bits per iteration: it reads one
// unaligned 64-bit word at each edge, bit-reverses both with
// bits.Reverse64, and cross-writes them. The sub-128-bit residue is
// finished with plain bit swaps. The result is O(length) with a
// roughly 64x constant-factor win over bit-by-bit rotation on large
// ranges.
//
// # Example Usage
//
//	b := bitarray.New(200)
//	b.Set(3, true)
//	b.Set(150, true)
//
//	b.Rotate(10, 180, -47) // rotate bits [10, 190) left by 47
//	b.Rotate(10, 180, 47)  // and back
//
// # Concurrency
//
// A BitArray is not safe for concurrent use. It assumes a single
// writer and no reads during mutation; embedders that share an array
// across goroutines must supply their own mutual exclusion.
package bitarray
