package model

import "fmt"

// RiskLevel categorizes the tracking risk implied by a uniqueness score.
// Like Rarity, it is part of the JSON wire format and therefore a string type.
type RiskLevel string

// Risk levels, from least to most trackable.
const (
	// RiskLow means the fingerprint blends in with a large share of the
	// population. Score below 40.
	RiskLow RiskLevel = "low"

	// RiskMedium means the fingerprint is somewhat distinctive.
	// Score in [40,60).
	RiskMedium RiskLevel = "medium"

	// RiskHigh means the fingerprint can be used to single the browser out
	// with good reliability. Score in [60,80).
	RiskHigh RiskLevel = "high"

	// RiskCritical means the fingerprint is close to globally unique.
	// Score of 80 or above.
	RiskCritical RiskLevel = "critical"
)

// String returns the wire representation of the risk level.
func (l RiskLevel) String() string {
	return string(l)
}

// AtLeast reports whether l is at or above the given level.
// The ordering is low < medium < high < critical.
func (l RiskLevel) AtLeast(other RiskLevel) bool {
	return l.rank() >= other.rank()
}

// rank maps the level to its position in the ordering.
// Unknown levels rank below low so they never satisfy AtLeast.
func (l RiskLevel) rank() int {
	switch l {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskCritical:
		return 4
	default:
		return 0
	}
}

// Message returns the human-readable risk summary for this level,
// embedding the uniqueness score.
func (l RiskLevel) Message(score float64) string {
	switch l {
	case RiskLow:
		return fmt.Sprintf("Your browser has low uniqueness (%.1f/100). Good privacy posture!", score)
	case RiskMedium:
		return fmt.Sprintf("Your browser has moderate uniqueness (%.1f/100). Consider privacy tools.", score)
	case RiskHigh:
		return fmt.Sprintf("Your browser is highly unique (%.1f/100). You can be easily tracked!", score)
	case RiskCritical:
		return fmt.Sprintf("Your browser is extremely unique (%.1f/100). Maximum trackability risk!", score)
	default:
		return "Unknown risk level"
	}
}
