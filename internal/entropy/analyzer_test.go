package entropy

import (
	"math"
	"strings"
	"testing"

	"github.com/beratfoglu/NetRunner/internal/distribution"
	"github.com/beratfoglu/NetRunner/internal/model"
)

// typicalWindowsFingerprint returns a fingerprint where every
// population-backed value sits in the default tables.
func typicalWindowsFingerprint() *model.Fingerprint {
	return &model.Fingerprint{
		Platform:            "Win32",
		ScreenResolution:    "1920x1080",
		Timezone:            "UTC-5",
		Language:            "en-US",
		HardwareConcurrency: "4",
		DeviceMemory:        "8",
	}
}

// TestAnalyzeTypicalFingerprint tests the full analysis of a common
// Windows fingerprint: the correlation discount fires and the score stays low.
func TestAnalyzeTypicalFingerprint(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(nil)
	analysis := analyzer.Analyze(typicalWindowsFingerprint())

	if !analysis.CorrelationApplied {
		t.Error("Win32/1920x1080 should trigger the correlation discount")
	}
	if analysis.SpoofingDetected {
		t.Error("a typical fingerprint must not be flagged as spoofed")
	}
	if analysis.RiskLevel != model.RiskLow {
		t.Errorf("RiskLevel = %q, want low (score %g, entropy %g)",
			analysis.RiskLevel, analysis.UniquenessScore, analysis.TotalEntropy)
	}
	if len(analysis.Components) != 6 {
		t.Errorf("got %d components, want 6", len(analysis.Components))
	}
	if analysis.RiskMessage == "" {
		t.Error("RiskMessage must be populated")
	}

	// The discounted entropy is exactly 0.7 times the raw sum.
	table := distribution.Default()
	var raw float64
	raw += Bits(table, distribution.ScreenResolution, "1920x1080")
	raw += Bits(table, distribution.Timezone, "UTC-5")
	raw += Bits(table, distribution.Platform, "Win32")
	raw += Bits(table, distribution.Language, "en-US")
	raw += Bits(table, distribution.HardwareConcurrency, "4")
	raw += Bits(table, distribution.DeviceMemory, "8")
	want := math.Round(raw*CorrelationDiscount*100) / 100

	if analysis.TotalEntropy != want {
		t.Errorf("TotalEntropy = %g, want %g", analysis.TotalEntropy, want)
	}
}

// TestAnalyzeComponentOrder tests that components appear in the fixed
// analysis order with the hash signals appended last.
func TestAnalyzeComponentOrder(t *testing.T) {
	t.Parallel()

	fp := typicalWindowsFingerprint()
	fp.CanvasHash = strings.Repeat("a1", 20)
	fp.WebGL = &model.WebGL{Renderer: "ANGLE (Intel UHD 620)"}
	fp.AudioHash = strings.Repeat("b2", 20)

	analysis := NewAnalyzer(nil).Analyze(fp)

	wantOrder := []string{
		"Screen Resolution",
		"Timezone",
		"Platform",
		"Language",
		"Hardware Concurrency",
		"Device Memory",
		"Canvas Fingerprint",
		"WebGL Renderer",
		"Audio Fingerprint",
	}

	if len(analysis.Components) != len(wantOrder) {
		t.Fatalf("got %d components, want %d", len(analysis.Components), len(wantOrder))
	}
	for i, want := range wantOrder {
		if analysis.Components[i].Name != want {
			t.Errorf("Components[%d].Name = %q, want %q", i, analysis.Components[i].Name, want)
		}
	}
}

// TestAnalyzeSkipsAbsentSignals tests that partial fingerprints analyze
// cleanly with only the present signals contributing.
func TestAnalyzeSkipsAbsentSignals(t *testing.T) {
	t.Parallel()

	fp := &model.Fingerprint{
		Platform: "MacIntel",
		Timezone: "UTC+1",
	}

	analysis := NewAnalyzer(nil).Analyze(fp)

	if len(analysis.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(analysis.Components))
	}
	if analysis.CorrelationApplied {
		t.Error("correlation discount requires both platform and resolution")
	}

	table := distribution.Default()
	want := math.Round((Bits(table, distribution.Timezone, "UTC+1")+
		Bits(table, distribution.Platform, "MacIntel"))*100) / 100
	if analysis.TotalEntropy != want {
		t.Errorf("TotalEntropy = %g, want %g", analysis.TotalEntropy, want)
	}
}

// TestAnalyzeCorrelationDiscount tests that the discount is a flat 0.7
// multiplied into the population-backed sum, regardless of the stored
// correlation strength, and that the hash contributions escape it.
func TestAnalyzeCorrelationDiscount(t *testing.T) {
	t.Parallel()

	fp := &model.Fingerprint{
		Platform:         "MacIntel",
		ScreenResolution: "2560x1600",
	}

	analyzer := NewAnalyzer(nil)
	base := analyzer.Analyze(fp)

	if !base.CorrelationApplied {
		t.Fatal("MacIntel/2560x1600 should trigger the correlation discount")
	}

	table := distribution.Default()
	popSum := Bits(table, distribution.ScreenResolution, "2560x1600") +
		Bits(table, distribution.Platform, "MacIntel")
	want := math.Round(popSum*CorrelationDiscount*100) / 100
	if base.TotalEntropy != want {
		t.Errorf("TotalEntropy = %g, want exactly 0.7 * population sum = %g", base.TotalEntropy, want)
	}

	// Adding canvas and audio raises the total by exactly their fixed bits:
	// the discount never touches them.
	fp.CanvasHash = strings.Repeat("ab", 20)
	fp.AudioHash = strings.Repeat("cd", 20)
	withHashes := analyzer.Analyze(fp)

	wantWithHashes := math.Round((popSum*CorrelationDiscount+CanvasBits+AudioBits)*100) / 100
	if withHashes.TotalEntropy != wantWithHashes {
		t.Errorf("TotalEntropy with hashes = %g, want %g", withHashes.TotalEntropy, wantWithHashes)
	}
}

// TestAnalyzeFixedContributions tests the fixed entropy and rarity of the
// hash signals.
func TestAnalyzeFixedContributions(t *testing.T) {
	t.Parallel()

	fp := &model.Fingerprint{
		CanvasHash: strings.Repeat("a", 64),
		WebGL:      &model.WebGL{Renderer: "Apple M1"},
		AudioHash:  strings.Repeat("b", 64),
	}

	analysis := NewAnalyzer(nil).Analyze(fp)

	wantEntropy := CanvasBits + WebGLBits + AudioBits
	if analysis.TotalEntropy != wantEntropy {
		t.Errorf("TotalEntropy = %g, want %g", analysis.TotalEntropy, wantEntropy)
	}

	byName := make(map[string]model.Component, len(analysis.Components))
	for _, c := range analysis.Components {
		byName[c.Name] = c
	}

	tests := []struct {
		name       string
		wantBits   float64
		wantRarity model.Rarity
	}{
		{"Canvas Fingerprint", CanvasBits, model.RarityVeryRare},
		{"WebGL Renderer", WebGLBits, model.RarityRare},
		{"Audio Fingerprint", AudioBits, model.RarityRare},
	}

	for _, tt := range tests {
		c, ok := byName[tt.name]
		if !ok {
			t.Errorf("component %q missing", tt.name)
			continue
		}
		if c.Entropy != tt.wantBits {
			t.Errorf("%s entropy = %g, want %g", tt.name, c.Entropy, tt.wantBits)
		}
		if c.Rarity != tt.wantRarity {
			t.Errorf("%s rarity = %q, want %q", tt.name, c.Rarity, tt.wantRarity)
		}
	}
}

// TestAnalyzeTruncatesHashes tests the hash display truncation.
func TestAnalyzeTruncatesHashes(t *testing.T) {
	t.Parallel()

	longHash := strings.Repeat("a", 64)
	fp := &model.Fingerprint{CanvasHash: longHash}

	analysis := NewAnalyzer(nil).Analyze(fp)

	if len(analysis.Components) != 1 {
		t.Fatalf("got %d components, want 1", len(analysis.Components))
	}
	want := longHash[:hashDisplayLen] + "..."
	if analysis.Components[0].Value != want {
		t.Errorf("canvas value = %q, want %q", analysis.Components[0].Value, want)
	}
}

// TestAnalyzeHighEntropyFingerprint tests that a fingerprint full of
// unknown values and hash signals lands in the upper risk brackets.
func TestAnalyzeHighEntropyFingerprint(t *testing.T) {
	t.Parallel()

	fp := &model.Fingerprint{
		Platform:            "FreeBSD amd64",
		ScreenResolution:    "1111x2222",
		Timezone:            "UTC+13",
		Language:            "xx-XX",
		HardwareConcurrency: "28",
		DeviceMemory:        "48",
		CanvasHash:          strings.Repeat("c", 64),
		WebGL:               &model.WebGL{Renderer: "llvmpipe"},
		AudioHash:           strings.Repeat("d", 64),
	}

	analysis := NewAnalyzer(nil).Analyze(fp)

	if analysis.CorrelationApplied {
		t.Error("unknown platform/resolution must not trigger the discount")
	}
	if !analysis.RiskLevel.AtLeast(model.RiskCritical) {
		t.Errorf("RiskLevel = %q, want critical (score %g, entropy %g)",
			analysis.RiskLevel, analysis.UniquenessScore, analysis.TotalEntropy)
	}
	// Six fallback values plus three hash contributions
	wantEntropy := math.Round((6*(-math.Log2(distribution.FallbackProbability))+
		CanvasBits+WebGLBits+AudioBits)*100) / 100
	if analysis.TotalEntropy != wantEntropy {
		t.Errorf("TotalEntropy = %g, want %g", analysis.TotalEntropy, wantEntropy)
	}
}

// TestAnalyzeLanguageNormalization tests that language tags are canonicalized
// before the table lookup, so "en-us" scores like "en-US".
func TestAnalyzeLanguageNormalization(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(nil)

	canonical := analyzer.Analyze(&model.Fingerprint{Language: "en-US"})
	lowercase := analyzer.Analyze(&model.Fingerprint{Language: "en-us"})

	if canonical.TotalEntropy != lowercase.TotalEntropy {
		t.Errorf("entropy differs by case: %g vs %g",
			canonical.TotalEntropy, lowercase.TotalEntropy)
	}
	if lowercase.Components[0].Value != "en-US" {
		t.Errorf("component value = %q, want canonical %q",
			lowercase.Components[0].Value, "en-US")
	}
}
