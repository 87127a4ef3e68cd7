// Package rappor implements the client-side encoder for RAPPOR
// (Randomized Aggregatable Privacy-Preserving Ordinal Response).
//
// The encoder turns a client's true value into a noisy bit vector (the
// Instantaneous Randomized Response, or IRR) that is safe to transmit to an
// aggregator: it composes cohort assignment, a Bloom-filter mapping,
// a Permanent Randomized Response (PRR) stage, and an Instantaneous
// Randomized Response (IRR) stage. Server-side decoding, CSV/CLI tooling,
// and protobuf record dispatch are not part of this package; only the
// interfaces they would consume (Deps, Report) live here.
package rappor
