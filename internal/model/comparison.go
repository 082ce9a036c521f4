package model

// NamedFingerprint pairs a fingerprint with a caller-supplied name,
// typically the browser it was captured from ("Chrome", "Brave", "Tor").
type NamedFingerprint struct {
	// Name identifies the fingerprint in the comparison output.
	Name string `json:"name"`

	// Data is the fingerprint to analyze.
	Data Fingerprint `json:"data"`
}

// ComparisonEntry is the per-fingerprint summary within a comparison.
type ComparisonEntry struct {
	// Name is the caller-supplied fingerprint name.
	Name string `json:"name"`

	// UniquenessScore is the fingerprint's uniqueness score.
	UniquenessScore float64 `json:"uniqueness_score"`

	// TotalEntropy is the fingerprint's total entropy in bits.
	TotalEntropy float64 `json:"total_entropy"`

	// RiskLevel is the risk classification of the score.
	RiskLevel RiskLevel `json:"risk_level"`

	// ComponentCount is the number of signals that contributed.
	ComponentCount int `json:"component_count"`
}

// Comparison is the result of analyzing multiple named fingerprints side
// by side. Entries are ordered by ascending uniqueness score: the first
// entry is the hardest to track, the last the easiest.
type Comparison struct {
	// Entries holds the per-fingerprint summaries, most private first.
	// The sort is stable, so entries with equal scores keep input order.
	Entries []ComparisonEntry `json:"comparison"`

	// MostPrivate is the name of the entry with the lowest score.
	// Ties resolve to the first occurrence in the input.
	MostPrivate string `json:"most_private"`

	// LeastPrivate is the name of the entry with the highest score.
	// Ties resolve to the last occurrence in the input.
	LeastPrivate string `json:"least_private"`

	// Recommendation is a one-line suggestion naming the most private entry.
	Recommendation string `json:"recommendation"`
}
