package entropy

import (
	"math"

	"github.com/beratfoglu/NetRunner/internal/distribution"
)

// Engine constants.
const (
	// SaturationBits caps the entropy of a value whose probability would be
	// zero. The distribution fallback makes that unreachable in practice,
	// but the guard keeps entropy a finite, comparable number under any
	// future table.
	SaturationBits = 10.0

	// CorrelationDiscount is multiplied into the population-backed entropy
	// sum when the platform/resolution pair is a known common combination.
	// It is a flat constant: the stored correlation strength does not scale
	// it (see the package tests pinning this behavior).
	CorrelationDiscount = 0.7
)

// Fixed contributions for the high-entropy hash signals. No reliable
// population table exists for hash outputs, so a conservative fixed value is
// used instead of pretending to model their true distribution.
const (
	// CanvasBits is the fixed entropy of a present canvas hash.
	// Canvas rendering differences make the hash near-unique per device.
	CanvasBits        = 16.0
	canvasProbability = 0.0001

	// WebGLBits is the fixed entropy of a present WebGL renderer string.
	// GPU models cluster, so this is high but well below canvas.
	WebGLBits        = 8.0
	webGLProbability = 0.005

	// AudioBits is the fixed entropy of a present audio hash.
	AudioBits        = 6.0
	audioProbability = 0.01
)

// Bits returns the entropy in bits of observing the given value for the
// given component type: -log2(p) with p taken from the table. Values absent
// from the table use the 0.001 fallback, bounding unknown-value entropy at
// about 9.97 bits.
func Bits(table *distribution.Table, componentType distribution.Type, value string) float64 {
	p := table.Probability(componentType, value)
	if p <= 0 {
		return SaturationBits
	}
	return -math.Log2(p)
}

// round2 rounds to 2 decimal places, used for entropy values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to 1 decimal place, used for scores.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
