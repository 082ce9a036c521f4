package entropy

import (
	"math"

	"github.com/beratfoglu/NetRunner/internal/model"
)

// Score maps total entropy in bits onto the bounded [0,100] uniqueness
// score, rounded to 1 decimal. The curve is piecewise linear and continuous
// by construction: each segment starts at the value (20, 40, 60, 80) where
// the previous one ends, and the last segment flattens to 0.67 points per
// bit before capping at 100.
func Score(totalEntropy float64) float64 {
	var score float64
	switch {
	case totalEntropy < 10:
		score = 20 + totalEntropy*2
	case totalEntropy < 20:
		score = 40 + (totalEntropy-10)*2
	case totalEntropy < 30:
		score = 60 + (totalEntropy-20)*2
	default:
		score = 80 + (totalEntropy-30)*0.67
		score = math.Min(score, 100)
	}
	return round1(score)
}

// RiskLevelForScore classifies a uniqueness score into a risk level.
// Brackets are upper-exclusive: exactly 40 is medium, not low.
func RiskLevelForScore(score float64) model.RiskLevel {
	switch {
	case score < 40:
		return model.RiskLow
	case score < 60:
		return model.RiskMedium
	case score < 80:
		return model.RiskHigh
	default:
		return model.RiskCritical
	}
}
