package distribution

// Default returns the built-in reference tables.
//
// The numbers are representative sample data, roughly matching public
// browser-population statistics. They deliberately do not sum to 1 per
// component: only values common enough to matter are listed, and everything
// else falls through to FallbackProbability.
func Default() *Table {
	return &Table{
		distributions: map[Type]map[string]float64{
			ScreenResolution: {
				"1920x1080": 0.38,
				"1366x768":  0.21,
				"1536x864":  0.08,
				"2560x1440": 0.07,
				"1440x900":  0.05,
				"1280x720":  0.04,
				"3840x2160": 0.03,
				"1600x900":  0.02,
				"2560x1600": 0.01,
			},
			Timezone: {
				"UTC+0":    0.15,
				"UTC-5":    0.18,
				"UTC-8":    0.12,
				"UTC+1":    0.10,
				"UTC+3":    0.08,
				"UTC+8":    0.15,
				"UTC+9":    0.05,
				"UTC+5:30": 0.07,
			},
			Platform: {
				"Win32":        0.65,
				"MacIntel":     0.20,
				"Linux x86_64": 0.08,
				"iPhone":       0.04,
				"Android":      0.03,
			},
			Language: {
				"en-US": 0.35,
				"en-GB": 0.08,
				"zh-CN": 0.15,
				"es-ES": 0.06,
				"fr-FR": 0.05,
				"de-DE": 0.05,
				"tr-TR": 0.03,
				"ja-JP": 0.04,
				"pt-BR": 0.03,
			},
			HardwareConcurrency: {
				"2":  0.10,
				"4":  0.35,
				"6":  0.15,
				"8":  0.25,
				"12": 0.08,
				"16": 0.05,
				"24": 0.01,
			},
			DeviceMemory: {
				"2":  0.05,
				"4":  0.25,
				"8":  0.45,
				"16": 0.20,
				"32": 0.04,
				"64": 0.01,
			},
		},
		// Known platform/resolution pairs that co-occur far more often than
		// independence would predict. The strength values describe how
		// common each pair is within its platform; only the presence of a
		// pair matters to the discount formula.
		correlations: map[string]map[string]float64{
			"MacIntel": {
				"2560x1600": 0.15, // MacBook Pro 13"
				"2880x1800": 0.10, // MacBook Pro Retina
				"3024x1964": 0.05, // MacBook Air
				"5120x2880": 0.02, // 5K iMac
			},
			"Win32": {
				"1920x1080": 0.50,
				"1366x768":  0.25,
			},
		},
	}
}
