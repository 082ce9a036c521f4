package entropy

import (
	"math"
	"testing"

	"github.com/beratfoglu/NetRunner/internal/distribution"
	"github.com/beratfoglu/NetRunner/internal/model"
)

const epsilon = 1e-9

// TestBits tests that entropy is exactly -log2(p) for every table entry.
func TestBits(t *testing.T) {
	t.Parallel()

	table := distribution.Default()

	for _, componentType := range distribution.Types() {
		for value, p := range table.Values(componentType) {
			want := -math.Log2(p)
			got := Bits(table, componentType, value)
			if math.Abs(got-want) > epsilon {
				t.Errorf("Bits(%s, %q) = %v, want %v", componentType, value, got, want)
			}
		}
	}
}

// TestBitsUnknownValue tests the fallback entropy for values absent from
// the tables: -log2(0.001), just under 10 bits.
func TestBitsUnknownValue(t *testing.T) {
	t.Parallel()

	table := distribution.Default()

	want := -math.Log2(distribution.FallbackProbability)
	got := Bits(table, distribution.ScreenResolution, "1111x2222")
	if math.Abs(got-want) > epsilon {
		t.Errorf("Bits for unknown value = %v, want %v", got, want)
	}
	if got >= SaturationBits {
		t.Errorf("fallback entropy %v should stay below the %v saturation cap", got, SaturationBits)
	}
}

// TestScore tests the piecewise-linear entropy-to-score mapping.
func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		totalEntropy float64
		want         float64
	}{
		{"zero entropy floors at 20", 0, 20.0},
		{"mid first segment", 5, 30.0},
		{"start of second segment", 10, 40.0},
		{"mid second segment", 15, 50.0},
		{"start of third segment", 20, 60.0},
		{"mid third segment", 25, 70.0},
		{"start of last segment", 30, 80.0},
		{"last segment slope is 0.67", 40, 86.7},
		{"approaches cap", 59, 99.4},
		{"caps at 100", 105, 100.0},
		{"far beyond cap", 500, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Score(tt.totalEntropy); got != tt.want {
				t.Errorf("Score(%g) = %g, want %g", tt.totalEntropy, got, tt.want)
			}
		})
	}
}

// TestScoreContinuity tests that adjacent segments meet at the breakpoints:
// no jump larger than rounding noise on either side of 10, 20, and 30 bits.
func TestScoreContinuity(t *testing.T) {
	t.Parallel()

	for _, boundary := range []float64{10, 20, 30} {
		below := Score(boundary - 0.001)
		at := Score(boundary)
		if math.Abs(at-below) > 0.01 {
			t.Errorf("score jumps at %g bits: Score(%g)=%g, Score(%g)=%g",
				boundary, boundary-0.001, below, boundary, at)
		}
	}
}

// TestRiskLevelForScore tests the score bracket boundaries.
// Brackets are upper-exclusive: exactly 40 is medium, exactly 80 critical.
func TestRiskLevelForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  model.RiskLevel
	}{
		{0, model.RiskLow},
		{39.9, model.RiskLow},
		{40, model.RiskMedium},
		{59.9, model.RiskMedium},
		{60, model.RiskHigh},
		{79.9, model.RiskHigh},
		{80, model.RiskCritical},
		{100, model.RiskCritical},
	}

	for _, tt := range tests {
		if got := RiskLevelForScore(tt.score); got != tt.want {
			t.Errorf("RiskLevelForScore(%g) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
