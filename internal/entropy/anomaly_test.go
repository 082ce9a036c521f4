package entropy

import (
	"strings"
	"testing"

	"github.com/beratfoglu/NetRunner/internal/model"
)

// TestSpoofingDetectedImpossibleCombinations tests the denylist of
// platform/resolution pairs no real device produces.
func TestSpoofingDetectedImpossibleCombinations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		platform   string
		resolution string
		want       bool
	}{
		{"iphone with desktop panel", "iPhone", "1920x1080", true},
		{"android with macbook panel", "Android", "2560x1600", true},
		{"linux with retina panel", "Linux x86_64", "2880x1800", true},
		{"real iphone resolution", "iPhone", "390x844", false},
		{"real windows resolution", "Win32", "1920x1080", false},
		{"missing platform", "", "1920x1080", false},
		{"missing resolution", "iPhone", "", false},
	}

	analyzer := NewAnalyzer(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fp := &model.Fingerprint{
				Platform:         tt.platform,
				ScreenResolution: tt.resolution,
			}
			if got := analyzer.SpoofingDetected(fp, nil); got != tt.want {
				t.Errorf("SpoofingDetected(%q, %q) = %v, want %v",
					tt.platform, tt.resolution, got, tt.want)
			}
		})
	}
}

// TestSpoofingDetectedVeryRareThreshold tests the collective-anomaly rule:
// four or more very_rare components flag the fingerprint.
func TestSpoofingDetectedVeryRareThreshold(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(nil)
	fp := &model.Fingerprint{Platform: "Win32", ScreenResolution: "1920x1080"}

	makeComponents := func(veryRare int) []model.Component {
		components := make([]model.Component, 0, veryRare+2)
		for i := 0; i < veryRare; i++ {
			components = append(components, model.Component{Rarity: model.RarityVeryRare})
		}
		components = append(components,
			model.Component{Rarity: model.RarityCommon},
			model.Component{Rarity: model.RarityRare},
		)
		return components
	}

	if analyzer.SpoofingDetected(fp, makeComponents(3)) {
		t.Error("three very_rare components must not trip the threshold")
	}
	if !analyzer.SpoofingDetected(fp, makeComponents(4)) {
		t.Error("four very_rare components must trip the threshold")
	}
}

// TestAnalyzeSpoofedFingerprint tests the full pipeline on a randomized
// fingerprint: an impossible combination of a mobile platform with a desktop
// panel plus a sea of unknown values.
func TestAnalyzeSpoofedFingerprint(t *testing.T) {
	t.Parallel()

	fp := &model.Fingerprint{
		Platform:            "iPhone",
		ScreenResolution:    "1920x1080",
		Timezone:            "UTC-12",
		Language:            "zz",
		HardwareConcurrency: "96",
		CanvasHash:          strings.Repeat("e", 64),
	}

	analysis := NewAnalyzer(nil).Analyze(fp)

	if !analysis.SpoofingDetected {
		t.Fatal("randomized fingerprint not flagged")
	}
	if len(analysis.Risks) == 0 || !strings.Contains(analysis.Risks[0], "ANTI-FINGERPRINT PARADOX") {
		t.Errorf("paradox warning must be the first risk, got %v", analysis.Risks)
	}
	if len(analysis.Recommendations) == 0 || !strings.Contains(analysis.Recommendations[0], "DISABLE") {
		t.Errorf("disable-randomizer advice must come first, got %v", analysis.Recommendations)
	}
}
