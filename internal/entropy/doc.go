// Package entropy implements the fingerprint uniqueness scoring engine.
//
// The engine converts each observed browser signal into an
// information-theoretic entropy (H = -log2(p) bits, where p is the value's
// population probability), sums the contributions with a discount for the
// known platform/resolution correlation, maps the total onto a bounded
// 0-100 uniqueness score, and derives a discrete risk level. A separate
// heuristic flags the anti-fingerprint paradox: randomization tooling that
// produces internally inconsistent signals and thereby makes a browser more
// identifiable, not less.
//
// Every operation is a pure computation over its inputs and an immutable
// distribution.Table, so analyses may run fully in parallel with no
// coordination.
package entropy
