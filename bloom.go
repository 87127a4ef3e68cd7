package rappor

import "fmt"

// makeBloomFilter hashes cohort_str||value once and derives NumHashes bit
// positions from the digest, per spec §4.B. The fixed profile spends one
// digest byte per hash index (byte mod NumBits); the extended profile
// concatenates bytesPerHash() digest bytes, little-endian, per index, since
// a single byte cannot address more than 256 bit positions.
func (e *Encoder) makeBloomFilter(value []byte) (Bits, error) {
	input := make([]byte, 0, len(e.cohortStr)+len(value))
	input = append(input, e.cohortStr...)
	input = append(input, value...)

	digest, err := e.deps.HashFunc(input)
	if err != nil {
		return nil, fmt.Errorf("bloom filter: %w", err)
	}

	buf := newBuf(e.params.NumBits)

	switch e.params.Profile {
	case ProfileFixed:
		if len(digest) < e.params.NumHashes {
			return nil, fmt.Errorf("bloom filter: %w: got %d bytes, need %d", ErrHashTooShort, len(digest), e.params.NumHashes)
		}
		for i := 0; i < e.params.NumHashes; i++ {
			b := int(digest[i]) % e.params.NumBits
			setBit(buf, b)
		}

	case ProfileExtended:
		bpc := e.params.bytesPerHash()
		if bpc > 4 {
			return nil, fmt.Errorf("bloom filter: %w: %d", ErrTooManyHashBytes, bpc)
		}
		need := e.params.NumHashes * bpc
		if len(digest) < need {
			return nil, fmt.Errorf("bloom filter: %w: got %d bytes, need %d", ErrHashTooShort, len(digest), need)
		}
		for i := 0; i < e.params.NumHashes; i++ {
			chunk := digest[i*bpc : (i+1)*bpc]
			var v uint32
			for j := len(chunk) - 1; j >= 0; j-- {
				v = (v << 8) | uint32(chunk[j])
			}
			setBit(buf, int(v)%e.params.NumBits)
		}
	}

	return Bits(buf), nil
}
