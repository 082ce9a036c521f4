package distribution

// Type identifies one population-backed fingerprint component.
type Type string

// Population-backed component types. The declaration order is the analysis
// order: components appear in this order in every report.
const (
	// ScreenResolution is the screen size in "WIDTHxHEIGHT" form.
	ScreenResolution Type = "screen_resolution"
	// Timezone is the reported timezone offset.
	Timezone Type = "timezone"
	// Platform is the navigator.platform value.
	Platform Type = "platform"
	// Language is the primary browser language tag.
	Language Type = "language"
	// HardwareConcurrency is the logical CPU count.
	HardwareConcurrency Type = "hardware_concurrency"
	// DeviceMemory is the device memory in GiB.
	DeviceMemory Type = "device_memory"
)

// Types returns all population-backed component types in analysis order.
// Callers must not modify the returned slice.
func Types() []Type {
	return analysisOrder
}

// analysisOrder fixes the component ordering across reports and tests.
var analysisOrder = []Type{
	ScreenResolution,
	Timezone,
	Platform,
	Language,
	HardwareConcurrency,
	DeviceMemory,
}

// FallbackProbability is assigned to any value not present in a table.
// It is never zero so that entropy stays finite: an unknown value is treated
// as shared by 0.1% of the population, a floor rather than an impossibility.
const FallbackProbability = 0.001

// Table is an immutable snapshot of the population distributions and the
// platform/resolution correlation data. Construct one via Default or Load
// and treat it as read-only; concurrent reads need no synchronization.
type Table struct {
	// distributions maps component type -> observed value -> probability.
	// Probabilities are partial and need not sum to 1; the tables only list
	// representative values.
	distributions map[Type]map[string]float64

	// correlations maps platform -> resolution -> co-occurrence strength.
	// The presence of a pair is the correlation-discount trigger; the
	// strength value is descriptive metadata and does not enter the
	// numeric formula.
	correlations map[string]map[string]float64
}

// Probability returns the population probability for a value of the given
// component type. Unknown values, and values of unknown component types,
// return FallbackProbability. The lookup always succeeds; there is no error
// condition.
func (t *Table) Probability(componentType Type, value string) float64 {
	dist, ok := t.distributions[componentType]
	if !ok {
		return FallbackProbability
	}
	p, ok := dist[value]
	if !ok {
		return FallbackProbability
	}
	return p
}

// Known reports whether the value has an explicit entry in the table,
// as opposed to falling through to FallbackProbability.
func (t *Table) Known(componentType Type, value string) bool {
	dist, ok := t.distributions[componentType]
	if !ok {
		return false
	}
	_, ok = dist[value]
	return ok
}

// Correlated reports whether the platform/resolution pair is a known common
// combination. A correlated pair triggers the entropy discount: the two
// signals co-occur far more often than independence would predict, so their
// combined identifying power is below the sum of their parts.
func (t *Table) Correlated(platform, resolution string) bool {
	resolutions, ok := t.correlations[platform]
	if !ok {
		return false
	}
	_, ok = resolutions[resolution]
	return ok
}

// CorrelationStrength returns the stored co-occurrence strength for a
// platform/resolution pair and whether the pair exists. The strength is
// descriptive metadata only; the discount itself is a flat constant.
func (t *Table) CorrelationStrength(platform, resolution string) (float64, bool) {
	resolutions, ok := t.correlations[platform]
	if !ok {
		return 0, false
	}
	strength, ok := resolutions[resolution]
	return strength, ok
}

// Values returns a copy of the value->probability mapping for a component
// type. It exists for tests and table inspection; the hot path uses
// Probability directly.
func (t *Table) Values(componentType Type) map[string]float64 {
	dist, ok := t.distributions[componentType]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(dist))
	for k, v := range dist {
		out[k] = v
	}
	return out
}
