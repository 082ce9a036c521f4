package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no fingerprint input is specified.
	// The analyze and compare commands read a JSON file or stdin.
	ErrNoInput = errors.New("no input specified: provide a fingerprint JSON file or pipe to stdin")

	// ErrNoSignals is returned when the decoded fingerprint carries no
	// analyzable signals at all. Partial fingerprints are normal; fully
	// empty ones are rejected at the boundary before the engine runs.
	ErrNoSignals = errors.New("fingerprint contains no usable signals")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidHistoryLimit is returned when the history listing limit is
	// negative. Use 0 for the default limit.
	ErrInvalidHistoryLimit = errors.New("invalid history limit: must be non-negative")
)
