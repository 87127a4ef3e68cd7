package rappor

// HashFunc maps an arbitrary input to a digest used to choose Bloom filter
// bit positions. MD5 is the reference (DefaultHashFunc): dispersion, not
// collision resistance, is what this hash is asked for.
type HashFunc func(input []byte) ([]byte, error)

// HMACFunc is a keyed MAC producing a digest of the requested length. The
// reference for the fixed profile and for cohort assignment is plain
// HMAC-SHA256 (DefaultHMACFunc, length <= 32). The extended profile, whose
// PRR stage needs one entropy byte per report bit, injects HMACDRBGFunc
// instead, which can stretch its output to any requested length.
type HMACFunc func(key, message []byte, length int) ([]byte, error)

// IRRRand supplies the independent Bernoulli(prob) draws the IRR stage uses
// to decide, per bit, whether to report the PRR bit truthfully or flip a
// fresh coin. Implementations must return one bit of decision per logical
// report bit, packed into the same byte-reversed buffer convention as Bits.
// A single call is never asked for more than 32 bits: the reference
// randomness source returns 32-bit draws, so the extended profile's
// Encoder requests a fresh (P,Q) pair per 32-bit chunk (spec §4.D) instead
// of widening a single draw to cover the whole report.
type IRRRand interface {
	GetMask(prob float64, numBits int) ([]byte, error)
}

// Deps bundles the capabilities an Encoder needs but must not construct for
// itself: a hash function, the client's long-lived secret, a keyed MAC, and
// a randomness source for the IRR stage. Passing these in at construction
// (rather than reaching for package-level defaults) keeps an Encoder
// reproducible under test and lets a caller swap in the extended profile's
// HMAC-DRBG without touching Encoder itself.
type Deps struct {
	HashFunc     HashFunc
	ClientSecret []byte
	HMACFunc     HMACFunc
	IRRRand      IRRRand
}
