package rappor

import (
	"encoding/binary"
	"fmt"
)

// hmacCohortPrefix domain-separates cohort derivation from the PRR stage's
// HMAC calls (spec §4.A/§4.E); hmacPRRPrefix does the same for PRR.
var (
	hmacCohortPrefix = []byte{0x00}
	hmacPRRPrefix    = []byte{0x01}
)

// assignCohort derives a client's cohort from HMAC(client_secret, 0x00): the
// first 4 digest bytes read little-endian, masked to [0, numCohorts). This
// is a construction-time operation; its caller treats a non-nil error as
// fatal, since an Encoder cannot exist without a cohort.
func assignCohort(deps Deps, numCohorts int) (int, error) {
	digest, err := deps.HMACFunc(deps.ClientSecret, hmacCohortPrefix, 32)
	if err != nil {
		return 0, fmt.Errorf("cohort assignment: %w", err)
	}
	if len(digest) < 4 {
		return 0, fmt.Errorf("cohort assignment: %w: got %d bytes", ErrHMACTooShort, len(digest))
	}
	c := binary.LittleEndian.Uint32(digest[:4])
	mask := uint32(numCohorts - 1)
	return int(c & mask), nil
}
