package rappor

import "errors"

// Per-report errors (spec §7 class 2): recoverable, returned from EncodeBits
// / EncodeString. The caller may retry or drop the report; no partial IRR is
// ever emitted alongside one of these.
var (
	// ErrHashTooShort means the Bloom hash function returned fewer bytes
	// than the configured NumHashes (or bytesPerHash in the extended
	// profile) requires.
	ErrHashTooShort = errors.New("rappor: hash output too short for num_hashes")

	// ErrTooManyHashBytes means the extended-profile Bloom mapping would
	// need more than 4 bytes per hash index (spec §4.B).
	ErrTooManyHashBytes = errors.New("rappor: bytes per Bloom hash index exceeds 4")

	// ErrHMACTooShort means the HMAC function could not produce the
	// requested digest length (e.g. plain HMAC-SHA256 asked for >32 bytes).
	ErrHMACTooShort = errors.New("rappor: hmac output too short for requested length")

	// ErrDRBGShortOutput means the HMAC-DRBG failed to produce the
	// requested number of bytes.
	ErrDRBGShortOutput = errors.New("rappor: hmac-drbg produced short output")

	// ErrDRBGRequestTooLarge means a single HMACDRBGFunc call asked for more
	// bytes than one DRBG instantiation may produce without reseeding.
	ErrDRBGRequestTooLarge = errors.New("rappor: hmac-drbg request exceeds reseed-free budget")

	// ErrIRRRandFailed means the injected IRR randomness source returned an
	// error (e.g. a CSPRNG device read failure).
	ErrIRRRandFailed = errors.New("rappor: irr randomness source failed")
)
