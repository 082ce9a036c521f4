package model

// Rarity describes how unusual an observed signal value is within the
// reference population. It is derived from the value's population probability
// and serialized as a lowercase string in reports.
//
// Design decision: We use string constants rather than iota-based integers
// because the rarity bucket is part of the JSON wire format ("common",
// "very_rare", ...) and must round-trip through reports and the history
// database without a custom marshaller.
type Rarity string

// Rarity buckets, from most to least common.
const (
	// RarityCommon covers values shared by 20% or more of the population.
	RarityCommon Rarity = "common"

	// RarityUncommon covers values shared by 5% to 20% of the population.
	RarityUncommon Rarity = "uncommon"

	// RarityRare covers values shared by 1% to 5% of the population.
	RarityRare Rarity = "rare"

	// RarityVeryRare covers values shared by less than 1% of the population.
	// Several very rare values on one fingerprint is a strong tracking signal.
	RarityVeryRare Rarity = "very_rare"
)

// String returns the wire representation of the rarity bucket.
func (r Rarity) String() string {
	return string(r)
}

// RarityForProbability classifies a population probability into a rarity
// bucket. The thresholds form a total, non-overlapping partition of [0,1]:
// every probability maps to exactly one bucket, evaluated top-down with the
// first match winning.
func RarityForProbability(probability float64) Rarity {
	switch {
	case probability >= 0.20:
		return RarityCommon
	case probability >= 0.05:
		return RarityUncommon
	case probability >= 0.01:
		return RarityRare
	default:
		return RarityVeryRare
	}
}
