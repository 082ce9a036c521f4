package distribution

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader errors.
var (
	// ErrTableNotFound is returned when the table file does not exist.
	ErrTableNotFound = errors.New("distribution table file not found")

	// ErrInvalidProbability is returned when a probability in the file is
	// outside (0,1]. Zero is rejected explicitly: the engine relies on
	// every stored probability being positive so that entropy is finite.
	ErrInvalidProbability = errors.New("invalid probability: must be in (0,1]")

	// ErrUnknownComponentType is returned when the file lists a component
	// type the engine does not analyze. Failing fast here beats silently
	// ignoring a typo like "screen_reslution".
	ErrUnknownComponentType = errors.New("unknown component type in distribution table")
)

// tableFile is the YAML on-disk form of the override tables.
type tableFile struct {
	Distributions map[string]map[string]float64 `yaml:"distributions"`
	Correlations  map[string]map[string]float64 `yaml:"correlations"`
}

// Load builds a Table from the built-in defaults with overrides from a YAML
// file. A component type present in the file replaces the whole built-in
// distribution for that type; absent types keep their defaults. A
// correlations section, if present, replaces the built-in correlation map
// entirely.
//
// Example file:
//
//	distributions:
//	  screen_resolution:
//	    "1920x1080": 0.41
//	    "1366x768": 0.18
//	correlations:
//	  Win32:
//	    "1920x1080": 0.50
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided table path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse distribution table %s: %w", path, err)
	}

	table := Default()

	for typeName, values := range tf.Distributions {
		componentType := Type(typeName)
		if !validType(componentType) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponentType, typeName)
		}
		dist := make(map[string]float64, len(values))
		for value, p := range values {
			if p <= 0 || p > 1 {
				return nil, fmt.Errorf("%w: %s[%q] = %g", ErrInvalidProbability, typeName, value, p)
			}
			dist[value] = p
		}
		table.distributions[componentType] = dist
	}

	if tf.Correlations != nil {
		correlations := make(map[string]map[string]float64, len(tf.Correlations))
		for platform, resolutions := range tf.Correlations {
			pairs := make(map[string]float64, len(resolutions))
			for resolution, strength := range resolutions {
				if strength <= 0 || strength > 1 {
					return nil, fmt.Errorf("%w: correlation %s/%s = %g", ErrInvalidProbability, platform, resolution, strength)
				}
				pairs[resolution] = strength
			}
			correlations[platform] = pairs
		}
		table.correlations = correlations
	}

	return table, nil
}

// validType reports whether the component type is one the engine analyzes.
func validType(t Type) bool {
	for _, known := range analysisOrder {
		if t == known {
			return true
		}
	}
	return false
}
