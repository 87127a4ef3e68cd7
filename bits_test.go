package rappor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint32ToBitsRoundTrips(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xFF, 0x123, 0xFFFFFFFF} {
		b := Uint32ToBits(v, 32)
		assert.Equal(t, v, b.Uint32(), "value %#x", v)
	}
}

func TestUint32ToBitsUsesCeilByteWidth(t *testing.T) {
	assert.Len(t, Uint32ToBits(0, 1), 1)
	assert.Len(t, Uint32ToBits(0, 8), 1)
	assert.Len(t, Uint32ToBits(0, 9), 2)
	assert.Len(t, Uint32ToBits(0, 32), 4)
}

func TestBitLocationIsByteReversed(t *testing.T) {
	// In a 4-byte buffer, bit 0 lives in the last byte's LSB.
	buf := make([]byte, 4)
	setBit(buf, 0)
	assert.Equal(t, []byte{0, 0, 0, 0x01}, buf)

	buf = make([]byte, 4)
	setBit(buf, 31)
	assert.Equal(t, []byte{0x80, 0, 0, 0}, buf)
}

func TestGetSetBitRoundTrip(t *testing.T) {
	buf := newBuf(20)
	for _, i := range []int{0, 3, 7, 8, 19} {
		assert.False(t, getBit(buf, i))
		setBit(buf, i)
		assert.True(t, getBit(buf, i))
	}
}

func TestCombineMaskSelectsOverlayWhereSelSet(t *testing.T) {
	base := []byte{0xFF, 0x00}
	overlay := []byte{0x00, 0xFF}
	sel := []byte{0x0F, 0x0F}
	got := combineMask(base, overlay, sel)
	assert.Equal(t, []byte{0xF0, 0x0F}, got)
}
