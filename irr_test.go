package rappor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedMaskRand struct{ p, q []byte }

func (r fixedMaskRand) GetMask(prob float64, numBits int) ([]byte, error) {
	if prob == 0.75 {
		return append([]byte(nil), r.p...), nil
	}
	return append([]byte(nil), r.q...), nil
}

type erroringRand struct{}

func (erroringRand) GetMask(prob float64, numBits int) ([]byte, error) {
	return nil, assertErr
}

var assertErr = assertError("boom")

type assertError string

func (e assertError) Error() string { return string(e) }

func TestComputeIRRSelectsPWherePRRIsZero(t *testing.T) {
	e := fixedTestEncoder(t)
	e.deps.IRRRand = fixedMaskRand{p: []byte{0xAA, 0xAA, 0xAA, 0xAA}, q: []byte{0x55, 0x55, 0x55, 0x55}}
	prr := Bits{0x00, 0x00, 0x00, 0x00}
	irr, err := e.computeIRR(prr)
	require.NoError(t, err)
	assert.Equal(t, Bits{0xAA, 0xAA, 0xAA, 0xAA}, irr)
}

func TestComputeIRRSelectsQWherePRRIsOne(t *testing.T) {
	e := fixedTestEncoder(t)
	e.deps.IRRRand = fixedMaskRand{p: []byte{0xAA, 0xAA, 0xAA, 0xAA}, q: []byte{0x55, 0x55, 0x55, 0x55}}
	prr := Bits{0xFF, 0xFF, 0xFF, 0xFF}
	irr, err := e.computeIRR(prr)
	require.NoError(t, err)
	assert.Equal(t, Bits{0x55, 0x55, 0x55, 0x55}, irr)
}

func TestComputeIRRPropagatesRandFailure(t *testing.T) {
	e := fixedTestEncoder(t)
	e.deps.IRRRand = erroringRand{}
	_, err := e.computeIRR(Uint32ToBits(0, 32))
	assert.ErrorIs(t, err, ErrIRRRandFailed)
}
