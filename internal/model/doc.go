// Package model defines the core data structures used throughout NetRunner.
//
// This package contains the following main types:
//   - Fingerprint: Represents a collected browser fingerprint (the engine input)
//   - Component: One analyzed fingerprint signal with entropy and rarity
//   - Analysis: The full analysis result (the engine output)
//   - Comparison: Result of comparing multiple named fingerprints
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (entropy, report, database) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
