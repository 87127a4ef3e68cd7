package rappor

import "fmt"

// computePRR derives the Permanent Randomized Response for bloom: an
// f-mask and a uniform-bit buffer are drawn from
// HMAC(client_secret, 0x01||encoder_id||B), one digest byte per report bit,
// then prr = (bloom &^ fmask) | (uniform & fmask) (spec §4.C). It returns
// the intermediate uniform and fmask buffers alongside prr so tests and the
// simulation accessor can inspect each stage.
//
// The fixed profile requests a 32-byte digest (HMAC-SHA256's native size,
// sufficient since NumBits <= 32); the extended profile requests exactly
// NumBits bytes, which for a stretching HMACFunc (HMACDRBGFunc) is exactly
// how many entropy bytes the loop below consumes.
func (e *Encoder) computePRR(bloom Bits) (prr, uniform, fmask Bits, err error) {
	var bBytes []byte
	if e.params.Profile == ProfileFixed {
		b4 := make([]byte, 4)
		v := bloom.Uint32()
		b4[0] = byte(v >> 24)
		b4[1] = byte(v >> 16)
		b4[2] = byte(v >> 8)
		b4[3] = byte(v)
		bBytes = b4
	} else {
		bBytes = bloom
	}

	message := make([]byte, 0, len(hmacPRRPrefix)+len(e.id)+len(bBytes))
	message = append(message, hmacPRRPrefix...)
	message = append(message, e.id...)
	message = append(message, bBytes...)

	digestLen := 32
	if e.params.Profile == ProfileExtended {
		digestLen = e.params.NumBits
	}

	digest, err := e.deps.HMACFunc(e.deps.ClientSecret, message, digestLen)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("prr: %w", err)
	}
	if len(digest) != digestLen {
		return nil, nil, nil, fmt.Errorf("prr: %w: want %d bytes, got %d", ErrHMACTooShort, digestLen, len(digest))
	}

	threshold128 := int(e.params.ProbF * 128)
	uniformBuf := newBuf(e.params.NumBits)
	fmaskBuf := newBuf(e.params.NumBits)

	for i := 0; i < e.params.NumBits; i++ {
		b := digest[i]
		if b&0x01 == 1 {
			setBit(uniformBuf, i)
		}
		if int(b>>1) < threshold128 {
			setBit(fmaskBuf, i)
		}
	}

	prrBuf := combineMask(bloom, uniformBuf, fmaskBuf)
	return Bits(prrBuf), Bits(uniformBuf), Bits(fmaskBuf), nil
}
