package dataview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCursorSequentialRoundTrip writes a mixed run of values, rewinds, and
// reads them back, checking the offset after every step.
func TestCursorSequentialRoundTrip(t *testing.T) {
	v := New(make([]byte, 64))

	require.NoError(t, Write(v, uint8(0x01)))
	assert.Equal(t, 1, v.Offset())
	require.NoError(t, Write(v, uint16(0x0203)))
	assert.Equal(t, 3, v.Offset())
	require.NoError(t, Write(v, uint32(0x04050607)))
	assert.Equal(t, 7, v.Offset())
	require.NoError(t, Write(v, int64(-42)))
	assert.Equal(t, 15, v.Offset())
	require.NoError(t, Write(v, float64(3.5)))
	assert.Equal(t, 23, v.Offset())
	require.NoError(t, Write(v, Uint128{Lo: 1, Hi: 2}))
	assert.Equal(t, 39, v.Offset())
	require.NoError(t, v.WriteSlice([]byte{9, 8, 7}))
	assert.Equal(t, 42, v.Offset())

	v.SetOffset(0)

	u8, err := Read[uint8](v)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), u8)

	u16, err := Read[uint16](v)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), u16)

	u32, err := Read[uint32](v)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04050607), u32)

	i64, err := Read[int64](v)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i64)

	f64, err := Read[float64](v)
	require.NoError(t, err)
	assert.Equal(t, 3.5, f64)

	u128, err := Read[Uint128](v)
	require.NoError(t, err)
	assert.Equal(t, Uint128{Lo: 1, Hi: 2}, u128)

	tail, err := v.ReadSlice(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7}, tail)

	// offset came back to where the writes left it
	assert.Equal(t, 42, v.Offset())
}

// TestFailedOpsTouchNothing verifies failing reads and writes leave both
// the offset and the buffer byte-for-byte unchanged.
func TestFailedOpsTouchNothing(t *testing.T) {
	buf := []byte{1, 2, 3}
	v := New(buf)

	_, err := Read[uint8](v)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Offset())

	// 2 bytes remain, 4 wanted
	_, err = Read[uint32](v)
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 1, v.Offset())
	assert.Equal(t, []byte{1, 2, 3}, buf)

	_, err = v.ReadSlice(5)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = v.ReadSlice(-1)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = v.ReadBytes(3)
	require.ErrorIs(t, err, ErrOutOfBounds)

	require.ErrorIs(t, v.WriteSlice([]byte{7, 7, 7}), ErrOutOfBounds)
	require.ErrorIs(t, Write(v, uint32(7)), ErrOutOfBounds)
	assert.Equal(t, 1, v.Offset())
	assert.Equal(t, []byte{1, 2, 3}, buf)
}

// TestRemaining verifies the peek surface never fails, including offsets
// past the end of the buffer.
func TestRemaining(t *testing.T) {
	v := New([]byte{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3}, v.Remaining())
	assert.Equal(t, 3, v.Len())

	v.SetOffset(2)
	assert.Equal(t, []byte{3}, v.Remaining())
	assert.Equal(t, 1, v.Len())

	// past the end: empty, no error, no panic
	v.SetOffset(99)
	assert.Empty(t, v.Remaining())
	assert.Equal(t, 0, v.Len())

	_, err := Read[uint8](v)
	require.ErrorIs(t, err, ErrOutOfBounds)

	// negative offsets clamp to the start
	v.SetOffset(-5)
	assert.Equal(t, 0, v.Offset())
}

// TestReadSliceAliasesReadBytesCopies pins the borrow-vs-copy contract of
// the two slice readers.
func TestReadSliceAliasesReadBytesCopies(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	v := New(buf)

	borrowed, err := v.ReadSlice(2)
	require.NoError(t, err)
	owned, err := v.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, borrowed)
	assert.Equal(t, []byte{3, 4}, owned)
	assert.Equal(t, 4, v.Offset())

	buf[0] = 0xAA
	buf[2] = 0xBB
	assert.Equal(t, []byte{0xAA, 2}, borrowed)
	assert.Equal(t, []byte{3, 4}, owned)
}

// TestUncheckedCursorReads exercises the unchecked counterparts inside
// their precondition.
func TestUncheckedCursorReads(t *testing.T) {
	v := New([]byte{0x2A, 0x00, 0x01, 0x02})

	assert.Equal(t, uint8(0x2A), ReadUnchecked[uint8](v))
	assert.Equal(t, []byte{0x00, 0x01}, v.ReadSliceUnchecked(2))
	assert.Equal(t, []byte{0x02}, v.ReadBytesUnchecked(1))
	assert.Equal(t, 4, v.Offset())
}

// TestMustReadWrite verifies the assertive layer panics on exhaustion and
// otherwise behaves like the checked operations.
func TestMustReadWrite(t *testing.T) {
	v := New(make([]byte, 2))

	MustWrite(v, uint16(0xBEEF))
	assert.PanicsWithError(t, ErrOutOfBounds.Error(), func() {
		MustWrite(v, uint8(1))
	})

	v.SetOffset(0)
	assert.Equal(t, uint16(0xBEEF), MustRead[uint16](v))
	assert.PanicsWithError(t, ErrOutOfBounds.Error(), func() {
		MustRead[uint8](v)
	})
}

// TestOffsetMonotonicity sums a run of successful operations and checks the
// final offset equals the total bytes moved.
func TestOffsetMonotonicity(t *testing.T) {
	v := New(make([]byte, 32))

	total := 0
	for _, n := range []int{1, 2, 4, 8} {
		_, err := v.ReadBytes(n)
		require.NoError(t, err)
		total += n
		assert.Equal(t, total, v.Offset())
	}

	_, err := Read[uint64](v)
	require.NoError(t, err)
	total += 8
	assert.Equal(t, total, v.Offset())
}
