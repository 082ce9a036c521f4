package entropy

import (
	"fmt"

	"github.com/beratfoglu/NetRunner/internal/distribution"
	"github.com/beratfoglu/NetRunner/internal/model"
)

// Advisory texts. These are presentational only; no numeric logic reads
// them back.
const (
	riskParadox = "ANTI-FINGERPRINT PARADOX: Your browser data appears randomized/spoofed, which can make you MORE unique and trackable"
	riskCanvas  = "Unique Canvas fingerprint (can be used for cross-site tracking)"
	riskWebGL   = "GPU information exposed via WebGL"
	riskRareRes = "Uncommon screen resolution makes you easier to identify"
	riskOverall = "Overall fingerprint is extremely unique across all components"

	recDisableRandomizer = "DISABLE aggressive fingerprint randomization tools - they may be making you MORE trackable"
	recBuiltinProtection = "Use privacy browsers with built-in fingerprint protection instead of extensions"
	recPrivacyBrowser    = "Use privacy-focused browsers (Brave with Shields, Firefox with Enhanced Tracking Protection)"
	recRandomizerCaution = "Be cautious with fingerprint randomization - it can backfire if too aggressive"
	recDisableWebGL      = "Disable WebGL in browser settings if not needed for your work"
	recCanvasBuiltin     = "Use built-in browser protections rather than canvas blocking extensions"
	recTorBrowser        = "Consider using Tor Browser for maximum anonymity (but expect usability tradeoffs)"
	recPrivateMode       = "Use incognito/private mode and regularly clear browser data"
)

// overallUniqueScoreThreshold triggers the generic "extremely unique" risk.
const overallUniqueScoreThreshold = 80

// risks builds the ordered list of detected privacy risks: the paradox
// warning first, then the very-rare count, then component-specific findings,
// then the overall-uniqueness note.
func (a *Analyzer) risks(fp *model.Fingerprint, components []model.Component, score float64, spoofed bool) []string {
	risks := make([]string, 0, 6)

	if spoofed {
		risks = append(risks, riskParadox)
	}

	veryRare := 0
	for _, c := range components {
		if c.Rarity == model.RarityVeryRare {
			veryRare++
		}
	}
	if veryRare >= 2 {
		risks = append(risks, fmt.Sprintf("%d highly unique identifiers detected", veryRare))
	}

	if fp.CanvasHash != "" {
		risks = append(risks, riskCanvas)
	}
	// The WebGL contribution is always classified at least rare, so
	// presence alone exposes the GPU.
	if fp.HasWebGL() {
		risks = append(risks, riskWebGL)
	}
	if fp.ScreenResolution != "" {
		p := a.table.Probability(distribution.ScreenResolution, fp.ScreenResolution)
		if model.RarityForProbability(p) == model.RarityVeryRare {
			risks = append(risks, riskRareRes)
		}
	}

	if score > overallUniqueScoreThreshold {
		risks = append(risks, riskOverall)
	}

	return risks
}

// recommendations builds the ordered mitigation list. Spoofing advice takes
// precedence over the generic high-risk advice; the two general
// recommendations are always appended last.
func (a *Analyzer) recommendations(fp *model.Fingerprint, level model.RiskLevel, spoofed bool) []string {
	recs := make([]string, 0, 6)

	if spoofed {
		recs = append(recs, recDisableRandomizer, recBuiltinProtection)
	} else if level == model.RiskHigh || level == model.RiskCritical {
		recs = append(recs, recPrivacyBrowser, recRandomizerCaution)
	}

	if fp.HasWebGL() {
		recs = append(recs, recDisableWebGL)
	}
	if fp.CanvasHash != "" {
		recs = append(recs, recCanvasBuiltin)
	}

	return append(recs, recTorBrowser, recPrivateMode)
}
