package bitarray_test

import (
	"testing"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := bitarray.New(100)

	assert.Equal(t, uint64(100), b.Len())
	assert.Equal(t, 0, b.Count())

	for i := uint64(0); i < 100; i++ {
		assert.False(t, b.Get(i))
	}
}

func TestNew_ZeroSize(t *testing.T) {
	b := bitarray.New(0)

	assert.Equal(t, uint64(0), b.Len())
	assert.Equal(t, 0, b.Count())
	assert.Empty(t, b.Bytes())
	assert.Equal(t, "", b.String())

	// Rotating an empty range of an empty array is a no-op.
	b.Rotate(0, 0, 12345)
}

func TestSetGet_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)

	const n = 77
	b := bitarray.New(n)
	model := make([]bool, n)

	for op := 0; op < 1000; op++ {
		i := uint64(rng.Intn(n))
		v := rng.Bool()

		b.Set(i, v)
		model[i] = v

		require.Equal(t, v, b.Get(i))
		for j := uint64(0); j < n; j++ {
			require.Equal(t, model[j], b.Get(j), "op %d disturbed bit %d", op, j)
		}
	}
}

func TestSet_ClearsBit(t *testing.T) {
	b := bitarray.New(16)

	b.Set(9, true)
	assert.True(t, b.Get(9))

	b.Set(9, false)
	assert.False(t, b.Get(9))
	assert.Equal(t, 0, b.Count())
}

func TestGet_OutOfRange_Panics(t *testing.T) {
	b := bitarray.New(8)

	assert.Panics(t, func() { b.Get(8) })
	assert.Panics(t, func() { b.Set(8, true) })
	assert.Panics(t, func() { bitarray.New(0).Get(0) })
}

func TestNewFromBytes(t *testing.T) {
	b := bitarray.NewFromBytes([]byte{0xFF, 0xFF}, 13)

	assert.Equal(t, uint64(13), b.Len())
	assert.Equal(t, 13, b.Count())

	// Slack bits of the final byte are discarded.
	assert.Equal(t, []byte{0xFF, 0x1F}, b.Bytes())
}

func TestNewFromBytes_ShortData_Panics(t *testing.T) {
	assert.Panics(t, func() { bitarray.NewFromBytes([]byte{0xFF}, 9) })
}

func TestBytes(t *testing.T) {
	b := bitarray.New(12)
	b.Set(0, true)
	b.Set(8, true)

	assert.Equal(t, []byte{0x01, 0x01}, b.Bytes())

	// The slice aliases the array's storage.
	b.Bytes()[0] = 0x03
	assert.True(t, b.Get(1))
}

func TestCount(t *testing.T) {
	b := bitarray.New(1000)
	for i := uint64(0); i < 1000; i += 3 {
		b.Set(i, true)
	}

	assert.Equal(t, 334, b.Count())
}

func TestClearAll(t *testing.T) {
	rng := testutil.NewRNG(1)

	b := bitarray.New(300)
	rng.FillRandom(b)
	require.NotZero(t, b.Count())

	b.ClearAll()

	assert.Equal(t, 0, b.Count())
	assert.Equal(t, uint64(300), b.Len())
}

func TestClone(t *testing.T) {
	rng := testutil.NewRNG(2)

	b := bitarray.New(200)
	rng.FillRandom(b)

	c := b.Clone()
	require.True(t, b.Equal(c))

	// Independent storage.
	c.Set(0, !c.Get(0))
	assert.False(t, b.Equal(c))
}

func TestEqual(t *testing.T) {
	a := bitarray.New(10)
	b := bitarray.New(10)
	assert.True(t, a.Equal(b))

	b.Set(3, true)
	assert.False(t, a.Equal(b))

	// Same bits, different length.
	assert.False(t, bitarray.New(10).Equal(bitarray.New(11)))
}

func TestString(t *testing.T) {
	b := bitarray.New(8)
	b.Set(0, true)
	b.Set(2, true)
	b.Set(3, true)
	b.Set(6, true)

	assert.Equal(t, "10110010", b.String())
}
