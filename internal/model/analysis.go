package model

import "time"

// Component is one analyzed fingerprint signal. Components are immutable
// once produced and live only for the duration of one analysis.
type Component struct {
	// Name is the display label (e.g. "Screen Resolution").
	Name string `json:"name"`

	// Value is the normalized observed value. Hash signals are truncated
	// for display.
	Value string `json:"value"`

	// Entropy is the information content of the observation in bits,
	// rounded to 2 decimals.
	Entropy float64 `json:"entropy"`

	// Probability is the population probability of the value, in (0,1].
	Probability float64 `json:"probability"`

	// Percentage is Probability expressed as a percentage, rounded to
	// 2 decimals.
	Percentage float64 `json:"percentage"`

	// Rarity is the bucket derived from Probability.
	Rarity Rarity `json:"rarity"`
}

// Analysis is the aggregate output of one fingerprint analysis.
// It is produced once per request and never mutated after construction.
type Analysis struct {
	// Label is an optional caller-supplied name for this fingerprint
	// (browser name, capture source). Used for history lookups.
	Label string `json:"label,omitempty"`

	// AnalyzedAt is when the analysis was performed. Set by the boundary
	// layer, not the engine, which stays a pure function of its inputs.
	AnalyzedAt time.Time `json:"analyzed_at,omitzero"`

	// UniquenessScore is the bounded [0,100] uniqueness score,
	// rounded to 1 decimal.
	UniquenessScore float64 `json:"uniqueness_score"`

	// TotalEntropy is the summed entropy in bits, rounded to 2 decimals.
	TotalEntropy float64 `json:"total_entropy"`

	// RiskLevel is the discrete risk classification of the score.
	RiskLevel RiskLevel `json:"risk_level"`

	// RiskMessage is the human-readable summary for RiskLevel.
	RiskMessage string `json:"risk_message"`

	// CorrelationApplied is true when the platform/resolution correlation
	// discount was applied to the population-backed entropy sum.
	CorrelationApplied bool `json:"correlation_applied"`

	// SpoofingDetected is true when the anti-fingerprint paradox heuristic
	// fired: the fingerprint looks randomized in a way that increases
	// rather than decreases distinguishability.
	SpoofingDetected bool `json:"spoofing_detected"`

	// Components lists the analyzed signals in table order, with the fixed
	// high-entropy signals (canvas, WebGL, audio) appended last.
	Components []Component `json:"components"`

	// Risks lists the detected privacy risks, most important first.
	Risks []string `json:"risks"`

	// Recommendations lists mitigation advice, most specific first.
	// Both lists are purely presentational; no numeric logic consumes them.
	Recommendations []string `json:"recommendations"`
}

// VeryRareCount returns the number of components classified very_rare.
func (a *Analysis) VeryRareCount() int {
	count := 0
	for _, c := range a.Components {
		if c.Rarity == RarityVeryRare {
			count++
		}
	}
	return count
}
