package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "netrunner"

	// DefaultTableFile is the default distribution table override file name,
	// searched in the current directory and the XDG config directory.
	DefaultTableFile = ".netrunner.yaml"

	// DefaultHistoryLimit bounds history listings. Analyses are small, but
	// an unbounded listing is useless in a terminal; users can raise the
	// limit via the --limit flag.
	DefaultHistoryLimit = 20
)

// Config holds all configuration options for a NetRunner run.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., AnalyzeConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant
// benefit.
type Config struct {
	// InputPath is the fingerprint JSON file to analyze.
	// "-" or empty means read from stdin.
	InputPath string

	// Label is an optional name recorded with the analysis, typically the
	// browser the fingerprint was captured from. Used for history lookups.
	Label string

	// TablePath is an optional YAML file overriding the built-in
	// distribution and correlation tables. Empty means search the default
	// locations and fall back to the built-in tables.
	TablePath string

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// DBDir is the directory for the SQLite history database.
	// Defaults to the XDG data directory.
	DBDir string

	// SaveToDB indicates whether to persist the analysis for later
	// history listings and comparisons.
	SaveToDB bool

	// HistoryLimit bounds the number of entries the history command lists.
	// Zero means DefaultHistoryLimit.
	HistoryLimit int
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (history limit,
// database directory). This also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		SaveToDB:     true,
		DBDir:        XDGDataDir(),
		HistoryLimit: DefaultHistoryLimit,
	}
}

// XDGDataDir returns the XDG data directory for NetRunner.
// On Linux: ~/.local/share/netrunner
// On macOS: ~/Library/Application Support/netrunner
// On Windows: %LOCALAPPDATA%\netrunner
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for NetRunner.
// On Linux: ~/.config/netrunner
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes the
// others irrelevant.
func (c *Config) Validate() error {
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.HistoryLimit < 0 {
		return ErrInvalidHistoryLimit
	}
	return nil
}

// FindTableFile searches for a distribution table override file:
//  1. If tablePath is specified, use it directly.
//  2. Look for .netrunner.yaml in the current directory.
//  3. Look for .netrunner.yaml in the XDG config directory.
//
// Returns the path if found, or empty string if not found.
func FindTableFile(tablePath string) string {
	if tablePath != "" {
		if _, err := os.Stat(tablePath); err == nil {
			return tablePath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultTableFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(XDGConfigDir(), DefaultTableFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}
