package rappor

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"fmt"
)

// DefaultHashFunc is MD5, the reference Bloom-filter hash (spec §4.B/§4.E).
// Collision resistance is not the property being used here; a fast,
// well-dispersed 16-byte digest is.
func DefaultHashFunc(input []byte) ([]byte, error) {
	sum := md5.Sum(input)
	return sum[:], nil
}

// DefaultHMACFunc is plain HMAC-SHA256: the reference for cohort assignment
// and for the fixed profile's PRR stage. It cannot stretch past its own
// 32-byte digest; callers that need more (the extended profile) use
// HMACDRBGFunc instead.
func DefaultHMACFunc(key, message []byte, length int) ([]byte, error) {
	if length < 0 || length > sha256.Size {
		return nil, fmt.Errorf("%w: requested %d bytes, HMAC-SHA256 only has %d", ErrHMACTooShort, length, sha256.Size)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	digest := mac.Sum(nil)
	return digest[:length], nil
}
