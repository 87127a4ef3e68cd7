package rappor

import "fmt"

// maxDrawBits is the widest mask an IRRRand draw produces in one call: the
// reference randomness source returns a 32-bit mask (spec §4.D, §4.E), so
// for the extended profile (k > 32) the IRR stage draws a fresh (P,Q) pair
// every 4 output bytes instead of one pair sized to the whole report.
const maxDrawBits = 32

// computeIRR draws independent P- and Q-masks from deps.IRRRand, 4 bytes (or
// the remainder) at a time, and combines each chunk with the matching byte
// range of prr: irr = (p &^ prr) | (q & prr) (spec §4.D). Bits where prr is 0
// are reported truthfully with probability 1-ProbP (flipped to 1 with
// probability ProbP); bits where prr is 1 are reported truthfully with
// probability ProbQ. Chunks are walked big-endian-byte-wise -- the first
// (P,Q) pair fills the report's leading (most significant) bytes, the next
// pair the following 4 bytes, and so on -- so a fresh pair is drawn every 4
// bytes of output in the same byte order the report is transmitted in.
func (e *Encoder) computeIRR(prr Bits) (Bits, error) {
	nBytes := len(prr)
	out := make([]byte, nBytes)
	const chunkBytes = maxDrawBits / 8

	for start := 0; start < nBytes; start += chunkBytes {
		end := start + chunkBytes
		if end > nBytes {
			end = nBytes
		}
		chunkBits := (end - start) * 8

		p, err := e.deps.IRRRand.GetMask(e.params.ProbP, chunkBits)
		if err != nil {
			return nil, fmt.Errorf("irr: %w: p-mask: %v", ErrIRRRandFailed, err)
		}
		q, err := e.deps.IRRRand.GetMask(e.params.ProbQ, chunkBits)
		if err != nil {
			return nil, fmt.Errorf("irr: %w: q-mask: %v", ErrIRRRandFailed, err)
		}
		if len(p) != end-start || len(q) != end-start {
			return nil, fmt.Errorf("irr: %w: mask length mismatch", ErrIRRRandFailed)
		}

		copy(out[start:end], combineMask(p, q, prr[start:end]))
	}

	return Bits(out), nil
}
