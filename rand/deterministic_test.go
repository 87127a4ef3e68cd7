package rand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicFullProbabilitySetsEveryBit(t *testing.T) {
	d := NewDeterministic()
	mask, err := d.GetMask(1.0, 8)
	require.NoError(t, err)
	// prob=1.0 -> threshold=256, every draw (i*17)%256 < 256, so all 8 bits set.
	assert.Equal(t, []byte{0xFF}, mask)
}

func TestDeterministicStreamAdvancesAcrossCalls(t *testing.T) {
	d := NewDeterministic()
	first, err := d.GetMask(0.5, 32)
	require.NoError(t, err)
	second, err := d.GetMask(0.5, 32)
	require.NoError(t, err)

	fresh := NewDeterministic()
	// Draw 64 bits from a fresh stream in one call; the low 32 should equal
	// `first` and the next 32 should equal `second`, since state advances
	// byte by byte regardless of call boundaries.
	combined, err := fresh.GetMask(0.5, 64)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "no reason for the two 32-bit windows to coincide")
	assert.Len(t, combined, 8)
	assert.Equal(t, first, combined[4:8], "first call's 32 bits land in the low-order half of the combined buffer")
	assert.Equal(t, second, combined[0:4], "second call's 32 bits land in the high-order half of the combined buffer")
}

func TestDeterministicGetMaskRejectsOutOfRangeProbability(t *testing.T) {
	d := NewDeterministic()
	_, err := d.GetMask(1.5, 8)
	assert.Error(t, err)
	_, err = d.GetMask(-0.1, 8)
	assert.Error(t, err)
}

func TestDeterministicGetMaskIsReproducibleFromAFreshStream(t *testing.T) {
	a := NewDeterministic()
	b := NewDeterministic()
	maskA, err := a.GetMask(0.75, 32)
	require.NoError(t, err)
	maskB, err := b.GetMask(0.75, 32)
	require.NoError(t, err)
	assert.Equal(t, maskA, maskB)
}
