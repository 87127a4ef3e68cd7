package rappor

import (
	"encoding/binary"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Encoder is the client-side RAPPOR encoding pipeline for one metric
// (encoder_id): cohort assignment happens once, at construction; each call
// to EncodeBits or EncodeString runs the Bloom filter (String only), PRR,
// and IRR stages fresh.
type Encoder struct {
	params    Params
	deps      Deps
	id        []byte
	cohort    int
	cohortStr []byte // big-endian 4 bytes, cached for the Bloom-filter input
}

// New validates params, derives the cohort from deps.HMACFunc, and returns a
// ready-to-use Encoder. An invalid Params or a failed cohort derivation are
// both construction-time faults: New panics rather than returning a
// half-usable Encoder, matching the original's log-then-assert posture at
// startup (spec §7 class 1).
func New(encoderID string, params Params, deps Deps) *Encoder {
	params.Validate()

	cohort, err := assignCohort(deps, params.NumCohorts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"encoder_id":  encoderID,
			"num_cohorts": params.NumCohorts,
		}).WithError(err).Error("rappor: cohort assignment failed")
		panic(fmt.Sprintf("rappor: cohort assignment failed for %q: %v", encoderID, err))
	}

	cohortStr := make([]byte, 4)
	binary.BigEndian.PutUint32(cohortStr, uint32(cohort))

	return &Encoder{
		params:    params,
		deps:      deps,
		id:        []byte(encoderID),
		cohort:    cohort,
		cohortStr: cohortStr,
	}
}

// Cohort returns the cohort this Encoder was assigned (or overridden to).
func (e *Encoder) Cohort() int { return e.cohort }

// SetCohort overrides the HMAC-derived cohort assignment. It exists for
// reproducing test vectors and simulation harnesses that pin a specific
// cohort (spec §8 scenario 2); production callers should let New derive it.
func (e *Encoder) SetCohort(cohort int) {
	e.cohort = cohort
	binary.BigEndian.PutUint32(e.cohortStr, uint32(cohort))
}

// EncodeBits runs the PRR and IRR stages directly on an already-computed
// Bits buffer, skipping the Bloom filter. bits must be exactly
// ceil(NumBits/8) bytes.
func (e *Encoder) EncodeBits(bits Bits) (Bits, error) {
	want := (e.params.NumBits + 7) / 8
	if len(bits) != want {
		return nil, fmt.Errorf("rappor: EncodeBits: want %d bytes, got %d", want, len(bits))
	}
	_, irr, err := e.encodeInternal(bits)
	if err != nil {
		return nil, err
	}
	return Bits(irr), nil
}

// EncodeString maps value to its Bloom filter (makeBloomFilter), then runs
// the same PRR and IRR stages as EncodeBits on it (spec §4.F).
func (e *Encoder) EncodeString(value string) (Bits, error) {
	bloom, err := e.makeBloomFilter([]byte(value))
	if err != nil {
		return nil, err
	}
	_, irr, err := e.encodeInternal(bloom)
	if err != nil {
		return nil, err
	}
	return Bits(irr), nil
}

// Report runs the full pipeline on value and packages the result with this
// Encoder's cohort and metric id, ready for an aggregator (spec §6).
func (e *Encoder) Report(value string) (*Report, error) {
	irr, err := e.EncodeString(value)
	if err != nil {
		return nil, err
	}
	return &Report{Cohort: e.cohort, MetricID: string(e.id), IRR: irr}, nil
}

// encodeInternal runs the PRR then IRR stage over an explicit Bits buffer
// and additionally returns the intermediate PRR, so tests can reconstruct
// each pipeline stage independently (spec §4.F's simulation accessor).
func (e *Encoder) encodeInternal(bits Bits) (prr, irr Bits, err error) {
	p, _, _, err := e.computePRR(bits)
	if err != nil {
		return nil, nil, err
	}
	i, err := e.computeIRR(p)
	if err != nil {
		return nil, nil, err
	}
	return Bits(p), Bits(i), nil
}
