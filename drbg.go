package rappor

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

const drbgOutLen = sha256.Size

// drbgMaxBytesPerRequest is the largest chunk a single Generate call is
// split into before the DRBG state is refreshed with an Update(nil):
// floor(7500/8) per NIST SP 800-90A section D.2 #5, matching the reference
// Java HmacDrbg's MAX_BYTES_PER_REQUEST.
const drbgMaxBytesPerRequest = 937

// drbgMaxBytesTotal bounds how many bytes a single DRBG instantiation may
// ever be asked to produce -- conservative enough that the NIST
// RESEED_INTERVAL (10000) is never reached, since this package never
// reseeds, matching the reference Java HmacDrbg's MAX_BYTES_TOTAL.
// HMACDRBGFunc instantiates a fresh DRBG per call, so this bounds a single
// call's requested length, not a running total across calls.
const drbgMaxBytesTotal = 10000

// hmacDRBG implements the HMAC_DRBG mechanism of NIST SP 800-90A (Key/V
// state, Update and Generate, no reseed support -- this package never runs
// long enough between construction and use to need one), ported from
// the reference Java HmacDrbg class.
type hmacDRBG struct {
	key []byte
	v   []byte
}

func newHMACDRBG(providedData []byte) *hmacDRBG {
	d := &hmacDRBG{
		key: make([]byte, drbgOutLen),
		v:   make([]byte, drbgOutLen),
	}
	for i := range d.v {
		d.v[i] = 0x01
	}
	d.update(providedData)
	return d
}

func (d *hmacDRBG) hmac(key, data []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(data)
	return m.Sum(nil)
}

// update implements the NIST Update process. A nil providedData means "no
// additional input" and short-circuits after the first HMAC pass; any
// non-nil providedData (including an empty, non-nil slice) runs both
// passes.
func (d *hmacDRBG) update(providedData []byte) {
	msg := make([]byte, 0, len(d.v)+1+len(providedData))
	msg = append(msg, d.v...)
	msg = append(msg, 0x00)
	msg = append(msg, providedData...)
	d.key = d.hmac(d.key, msg)
	d.v = d.hmac(d.key, d.v)

	if providedData == nil {
		return
	}

	msg2 := make([]byte, 0, len(d.v)+1+len(providedData))
	msg2 = append(msg2, d.v...)
	msg2 = append(msg2, 0x01)
	msg2 = append(msg2, providedData...)
	d.key = d.hmac(d.key, msg2)
	d.v = d.hmac(d.key, d.v)
}

// generate implements the NIST Generate process with no additional input,
// in the reference's two nested loops: the outer loop splits the request
// into drbgMaxBytesPerRequest-sized chunks; the inner loop, for one chunk,
// refreshes V and appends it to the output until that chunk is full; each
// chunk ends with one Update(nil), not one per 32-byte V-refresh.
func (d *hmacDRBG) generate(n int) []byte {
	out := make([]byte, n)
	written := 0
	for written < n {
		chunk := n - written
		if chunk > drbgMaxBytesPerRequest {
			chunk = drbgMaxBytesPerRequest
		}
		d.generateChunk(out[written : written+chunk])
		written += chunk
	}
	return out
}

// generateChunk fills dst by repeatedly refreshing V with HMAC(Key, V),
// then runs the single Update(nil) the reference performs once per request
// chunk (step 6 of the NIST Generate process).
func (d *hmacDRBG) generateChunk(dst []byte) {
	written := 0
	for written < len(dst) {
		d.v = d.hmac(d.key, d.v)
		written += copy(dst[written:], d.v)
	}
	d.update(nil)
}

// HMACDRBGFunc is an HMACFunc that stretches HMAC-SHA256 via HMAC_DRBG to
// produce a digest of any requested length, seeded by
// provided_data = key||message (spec §4.E). It is the injected Deps.HMACFunc
// for the extended profile, in place of DefaultHMACFunc. length must not
// exceed drbgMaxBytesTotal: beyond that, the reference implementation
// requires reseeding, which this package (one DRBG instantiation per call)
// does not support.
func HMACDRBGFunc(key, message []byte, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrDRBGShortOutput, length)
	}
	if length > drbgMaxBytesTotal {
		return nil, fmt.Errorf("%w: requested %d bytes, exceeds the %d-byte reseed-free budget", ErrDRBGRequestTooLarge, length, drbgMaxBytesTotal)
	}
	providedData := make([]byte, 0, len(key)+len(message))
	providedData = append(providedData, key...)
	providedData = append(providedData, message...)
	d := newHMACDRBG(providedData)
	return d.generate(length), nil
}
