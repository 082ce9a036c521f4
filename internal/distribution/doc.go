// Package distribution holds the read-only population statistics the entropy
// engine is built on: per-component value probabilities and the known
// platform/resolution correlations.
//
// The tables are illustrative reference data, not live telemetry. They are
// constructed once at startup (built-in defaults, optionally overridden from
// a YAML file) and never mutated afterwards, so a single Table can be shared
// by any number of concurrent analyses without synchronization.
package distribution
