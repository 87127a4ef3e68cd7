package rappor

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Profile selects the bit-width regime an Encoder operates under.
type Profile int

const (
	// ProfileFixed limits the report vector to 1 <= k <= 32 bits. Its Bits
	// buffer reads as a big-endian integer; Bits.Uint32 returns the report as
	// the fixed profile's 32-bit value.
	ProfileFixed Profile = iota
	// ProfileExtended allows k to be any positive multiple of 8, up to
	// MaxExtendedBits. Bits uses the same byte-buffer layout as in the fixed
	// profile, just longer.
	ProfileExtended
)

const (
	// MaxFixedBits is the largest k the fixed profile supports: one HMAC-SHA256
	// byte of entropy is spent per bit, and SHA-256 has 32 bytes.
	MaxFixedBits = 32
	// MaxHashes is the largest number of Bloom filter hash functions
	// supported: MD5 has 16 bytes, and one byte is spent per hash.
	MaxHashes = 16
	// MaxCohorts is a practical ceiling on num_cohorts, distinct from the
	// 4-byte wire truncation limit of 2^32 cohorts (see spec Design Notes).
	MaxCohorts = 1 << 24
	// MaxExtendedBits bounds the extended profile's report width. The PRR
	// stage spends one HMAC-DRBG output byte per report bit (prr.go), so
	// this is pinned to drbgMaxBytesTotal (drbg.go) -- the most bytes a
	// single reseed-free HMAC_DRBG instantiation may produce -- rather than
	// to any Bloom-filter hashing cost. 10000 is already a multiple of 8, so
	// it doubles as a valid extended-profile bit width with no rounding.
	MaxExtendedBits = drbgMaxBytesTotal
)

// Params holds the immutable RAPPOR configuration for one Encoder. It is
// validated once, at construction, and never mutated afterward.
type Params struct {
	// NumBits (k): width of the report vector.
	NumBits int
	// NumHashes (h): number of bits set in the Bloom filter, 1 <= h <= 16.
	NumHashes int
	// NumCohorts (m): number of cohorts, a power of two >= 1.
	NumCohorts int
	// ProbF is the PRR noise probability, rounded down to a multiple of 1/128.
	ProbF float64
	// ProbP is the probability that a PRR 0-bit is reported as 1 in the IRR.
	ProbP float64
	// ProbQ is the probability that a PRR 1-bit is reported as 1 in the IRR.
	ProbQ float64
	// Profile selects fixed vs. extended bit-width semantics. Zero value is
	// ProfileFixed.
	Profile Profile
}

// Validate enforces the configuration rules of spec §3/§6. It never returns
// a value quietly reflecting an invalid configuration: on failure it panics,
// after logging which field failed and why, matching the original
// implementation's "log then assert" behavior at construction time.
func (p Params) Validate() {
	fail := func(field string, value interface{}, reason string) {
		logrus.WithFields(logrus.Fields{
			"field":  field,
			"value":  value,
			"reason": reason,
		}).Error("rappor: invalid Params")
		panic(fmt.Sprintf("rappor: invalid Params.%s = %v: %s", field, value, reason))
	}

	switch p.Profile {
	case ProfileFixed:
		if p.NumBits <= 0 || p.NumBits > MaxFixedBits {
			fail("NumBits", p.NumBits, fmt.Sprintf("must be in [1, %d] for the fixed profile", MaxFixedBits))
		}
	case ProfileExtended:
		if p.NumBits <= 0 || p.NumBits%8 != 0 {
			fail("NumBits", p.NumBits, "must be a positive multiple of 8 for the extended profile")
		}
		if p.NumBits > MaxExtendedBits {
			fail("NumBits", p.NumBits, fmt.Sprintf("exceeds MaxExtendedBits (%d)", MaxExtendedBits))
		}
	default:
		fail("Profile", p.Profile, "unknown profile")
	}

	if p.NumHashes < 1 || p.NumHashes > MaxHashes {
		fail("NumHashes", p.NumHashes, fmt.Sprintf("must be in [1, %d]", MaxHashes))
	}

	if p.NumCohorts <= 0 {
		fail("NumCohorts", p.NumCohorts, "must be positive")
	}
	if p.NumCohorts&(p.NumCohorts-1) != 0 {
		fail("NumCohorts", p.NumCohorts, "must be a power of two")
	}
	if p.NumCohorts > MaxCohorts {
		fail("NumCohorts", p.NumCohorts, fmt.Sprintf("exceeds MaxCohorts (%d)", MaxCohorts))
	}

	checkProb := func(field string, v float64) {
		if v < 0.0 || v > 1.0 {
			fail(field, v, "must be in [0.0, 1.0]")
		}
	}
	checkProb("ProbF", p.ProbF)
	checkProb("ProbP", p.ProbP)
	checkProb("ProbQ", p.ProbQ)
}

// bytesPerHash returns the number of bytes of hash output consumed per
// Bloom-filter hash index in the extended profile (spec §4.B).
func (p Params) bytesPerHash() int {
	e := ceilLog2(p.NumBits)
	bpc := (e-1)/8 + 1
	if bpc < 1 {
		bpc = 1
	}
	return bpc
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	bits := 0
	v := 1
	for v < n {
		v <<= 1
		bits++
	}
	return bits
}
