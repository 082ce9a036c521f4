package entropy

import "github.com/beratfoglu/NetRunner/internal/model"

// platformResolution is one entry in the impossible-combination denylist.
type platformResolution struct {
	platform   string
	resolution string
}

// impossibleCombinations lists platform/resolution pairs that no real
// device produces. Aggressive fingerprint randomizers assemble signals
// independently and routinely emit combinations like these.
//
// Design decision: This is a known-incomplete heuristic, kept as an
// explicit, tested finite table rather than a generative rule. Extend the
// table; do not try to infer impossibility dynamically.
var impossibleCombinations = []platformResolution{
	{"iPhone", "1920x1080"},       // no iPhone has a 16:9 desktop panel
	{"Android", "2560x1600"},      // Android phones rarely report this
	{"Linux x86_64", "2880x1800"}, // MacBook Retina panel on a Linux box
}

// veryRareThreshold is the number of very_rare components at which the
// fingerprint as a whole is considered suspicious. Genuine fingerprints
// rarely have more than two or three.
const veryRareThreshold = 4

// SpoofingDetected reports whether the fingerprint shows the
// anti-fingerprint paradox: randomization tooling intended to reduce
// trackability producing an internally inconsistent or collectively
// anomalous fingerprint, which paradoxically increases distinguishability.
//
// It fires when either the platform/resolution pair is on the
// impossible-combination denylist, or at least four components classify as
// very_rare. This is flagged distinctly from ordinary high entropy so the
// advisory output can recommend removing the tool instead of adding more.
func (a *Analyzer) SpoofingDetected(fp *model.Fingerprint, components []model.Component) bool {
	if fp.Platform != "" && fp.ScreenResolution != "" {
		for _, combo := range impossibleCombinations {
			if fp.Platform == combo.platform && fp.ScreenResolution == combo.resolution {
				return true
			}
		}
	}

	veryRare := 0
	for _, c := range components {
		if c.Rarity == model.RarityVeryRare {
			veryRare++
		}
	}
	return veryRare >= veryRareThreshold
}
