package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/beratfoglu/NetRunner/internal/config"
	"github.com/beratfoglu/NetRunner/internal/entropy"
	"github.com/beratfoglu/NetRunner/internal/log"
	"github.com/beratfoglu/NetRunner/internal/model"
)

// compareInput is the JSON document the compare command reads: a set of
// named fingerprints, typically one per browser.
type compareInput struct {
	Fingerprints []model.NamedFingerprint `json:"fingerprints"`
}

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [fingerprints.json]",
		Short: "Compare multiple browser fingerprints",
		Long: `Compare analyzes multiple fingerprints and ranks them by uniqueness.

It reads a JSON document (file argument or stdin) with named fingerprints:

  {
    "fingerprints": [
      {"name": "firefox", "data": { ...fingerprint... }},
      {"name": "chrome", "data": { ...fingerprint... }},
      {"name": "tor-browser", "data": { ...fingerprint... }}
    ]
  }

The output ranks the fingerprints from most to least private and recommends
which browser to use.

Examples:
  # Compare browser fingerprints from a file
  netrunner compare browsers.json

  # JSON output for scripting
  netrunner compare --json browsers.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	cmd.Flags().StringP("tables", "t", "",
		"Distribution table override file (default: .netrunner.yaml in current or config directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	var err error
	cfg.TablePath, err = cmd.Flags().GetString("tables")
	if err != nil {
		return err
	}
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	input, err := readCompareInput(cfg.InputPath)
	if err != nil {
		return err
	}

	table, err := loadTable(cfg, logger)
	if err != nil {
		return err
	}

	analyzer := entropy.NewAnalyzer(table)
	comparison, err := analyzer.Compare(ctx, input.Fingerprints)
	if err != nil {
		return err
	}

	logger.Debug("comparison complete",
		"fingerprints", len(input.Fingerprints),
		"mostPrivate", comparison.MostPrivate,
		"leastPrivate", comparison.LeastPrivate,
	)

	output, cleanup, err := openReportOutput(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = newReportWriter(cfg, output).WriteComparison(comparison)
	return err
}

// readCompareInput decodes the named fingerprint set from a file or stdin.
func readCompareInput(path string) (*compareInput, error) {
	var r io.Reader
	if path == "" || path == "-" {
		stat, err := os.Stdin.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return nil, config.ErrNoInput
		}
		r = os.Stdin
	} else {
		f, err := os.Open(path) //nolint:gosec // user-supplied input path is the point
		if err != nil {
			return nil, fmt.Errorf("failed to open fingerprints file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var input compareInput
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, fmt.Errorf("failed to parse fingerprints JSON: %w", err)
	}

	return &input, nil
}
