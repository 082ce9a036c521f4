package entropy

import (
	"github.com/beratfoglu/NetRunner/internal/distribution"
	"github.com/beratfoglu/NetRunner/internal/model"
)

// Display labels for the analyzed components.
const (
	labelScreenResolution    = "Screen Resolution"
	labelTimezone            = "Timezone"
	labelPlatform            = "Platform"
	labelLanguage            = "Language"
	labelHardwareConcurrency = "Hardware Concurrency"
	labelDeviceMemory        = "Device Memory"
	labelCanvas              = "Canvas Fingerprint"
	labelWebGL               = "WebGL Renderer"
	labelAudio               = "Audio Fingerprint"
)

// hashDisplayLen is how many characters of a hash signal are shown in
// component values. The full hash adds nothing for a human reader.
const hashDisplayLen = 32

// Analyzer computes uniqueness analyses against an injected distribution
// table.
//
// Design decision: The table is a constructor dependency rather than a
// package-level variable. This keeps the engine trivially testable with
// synthetic distributions and makes the immutable-snapshot concurrency model
// explicit: an Analyzer is safe for concurrent use because neither it nor
// its table ever mutates after construction.
type Analyzer struct {
	// table is the immutable population snapshot used for all lookups.
	table *distribution.Table
}

// NewAnalyzer creates an Analyzer backed by the given table.
// A nil table selects the built-in defaults.
func NewAnalyzer(table *distribution.Table) *Analyzer {
	if table == nil {
		table = distribution.Default()
	}
	return &Analyzer{table: table}
}

// Analyze computes the full uniqueness analysis for one fingerprint.
//
// The algorithm:
//  1. Each present population-backed signal contributes -log2(p) bits and a
//     classified component, in fixed table order.
//  2. The correlation discount is applied once to that sum when the
//     platform/resolution pair is a known common combination.
//  3. The fixed hash contributions (canvas, WebGL, audio) are added after
//     the discount; they are never discounted.
//
// Absent signals are skipped, never fatal: a partial fingerprint is a
// normal input. The caller is responsible for rejecting fingerprints with
// no signals at all.
func (a *Analyzer) Analyze(fp *model.Fingerprint) *model.Analysis {
	var total float64
	components := make([]model.Component, 0, 9)

	for _, signal := range a.signals(fp) {
		if signal.value == "" {
			continue
		}
		bits := Bits(a.table, signal.componentType, signal.value)
		total += bits
		components = append(components, a.component(signal.label, signal.componentType, signal.value, bits))
	}

	// The discount applies to the population-backed sum only.
	correlationApplied := false
	if fp.Platform != "" && fp.ScreenResolution != "" &&
		a.table.Correlated(fp.Platform, fp.ScreenResolution) {
		total *= CorrelationDiscount
		correlationApplied = true
	}

	if fp.CanvasHash != "" {
		total += CanvasBits
		components = append(components, fixedComponent(labelCanvas, truncateHash(fp.CanvasHash), CanvasBits, canvasProbability, model.RarityVeryRare))
	}
	if fp.HasWebGL() {
		total += WebGLBits
		components = append(components, fixedComponent(labelWebGL, fp.WebGLRenderer(), WebGLBits, webGLProbability, model.RarityRare))
	}
	if fp.AudioHash != "" {
		total += AudioBits
		components = append(components, fixedComponent(labelAudio, truncateHash(fp.AudioHash), AudioBits, audioProbability, model.RarityRare))
	}

	totalEntropy := round2(total)
	score := Score(totalEntropy)
	level := RiskLevelForScore(score)
	spoofed := a.SpoofingDetected(fp, components)

	return &model.Analysis{
		UniquenessScore:    score,
		TotalEntropy:       totalEntropy,
		RiskLevel:          level,
		RiskMessage:        level.Message(score),
		CorrelationApplied: correlationApplied,
		SpoofingDetected:   spoofed,
		Components:         components,
		Risks:              a.risks(fp, components, score, spoofed),
		Recommendations:    a.recommendations(fp, level, spoofed),
	}
}

// signal is one population-backed observation extracted from the typed
// fingerprint record.
type signal struct {
	componentType distribution.Type
	label         string
	value         string
}

// signals extracts the population-backed observations in analysis order.
// Normalization happens here: language tags are canonicalized and the
// numeric signals already arrive in string form via model.SignalValue.
func (a *Analyzer) signals(fp *model.Fingerprint) []signal {
	return []signal{
		{distribution.ScreenResolution, labelScreenResolution, fp.ScreenResolution},
		{distribution.Timezone, labelTimezone, fp.Timezone},
		{distribution.Platform, labelPlatform, fp.Platform},
		{distribution.Language, labelLanguage, fp.NormalizedLanguage()},
		{distribution.HardwareConcurrency, labelHardwareConcurrency, fp.HardwareConcurrency.String()},
		{distribution.DeviceMemory, labelDeviceMemory, fp.DeviceMemory.String()},
	}
}

// component builds the observation record for a population-backed signal.
func (a *Analyzer) component(label string, componentType distribution.Type, value string, bits float64) model.Component {
	p := a.table.Probability(componentType, value)
	return model.Component{
		Name:        label,
		Value:       value,
		Entropy:     round2(bits),
		Probability: p,
		Percentage:  round2(p * 100),
		Rarity:      model.RarityForProbability(p),
	}
}

// fixedComponent builds the observation record for a fixed-entropy hash
// signal. Probability and rarity are assigned, not looked up: the WebGL
// signal is deliberately "rare" even though its assigned probability of
// 0.005 would classify as very_rare, so that a lone GPU string does not
// count toward the spoofing heuristic's very-rare threshold.
func fixedComponent(label, value string, bits, probability float64, rarity model.Rarity) model.Component {
	return model.Component{
		Name:        label,
		Value:       value,
		Entropy:     bits,
		Probability: probability,
		Percentage:  round2(probability * 100),
		Rarity:      rarity,
	}
}

// truncateHash shortens a hash for display.
func truncateHash(hash string) string {
	if len(hash) > hashDisplayLen {
		hash = hash[:hashDisplayLen]
	}
	return hash + "..."
}
