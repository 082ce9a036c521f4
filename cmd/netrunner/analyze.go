package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/beratfoglu/NetRunner/internal/config"
	"github.com/beratfoglu/NetRunner/internal/database"
	"github.com/beratfoglu/NetRunner/internal/distribution"
	"github.com/beratfoglu/NetRunner/internal/entropy"
	"github.com/beratfoglu/NetRunner/internal/log"
	"github.com/beratfoglu/NetRunner/internal/model"
	"github.com/beratfoglu/NetRunner/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [fingerprint.json]",
		Short: "Analyze a browser fingerprint for uniqueness",
		Long: `Analyze estimates how uniquely identifiable a browser fingerprint is.

It reads a fingerprint as JSON (file argument or stdin), scores each signal
against real-world distributions, and reports:
- A 0-100 uniqueness score and tracking risk level
- Per-component entropy, probability, and rarity
- Spoofing/randomization detection (the anti-fingerprint paradox)
- Privacy risks and actionable recommendations

Examples:
  # Analyze a fingerprint file
  netrunner analyze fingerprint.json

  # Pipe a fingerprint from a capture tool
  capture-fingerprint | netrunner analyze

  # Label the analysis for history tracking
  netrunner analyze --label firefox fingerprint.json

  # Output JSON report to a file
  netrunner analyze --json -o report.json fingerprint.json

  # Use custom distribution tables
  netrunner analyze --tables mytables.yaml fingerprint.json

Distribution table override file (.netrunner.yaml) example:
  distributions:
    screen_resolution:
      "1920x1080": 0.25
      "2560x1440": 0.08
  correlations:
    Win32:
      "1920x1080": 0.50`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyzeCmd,
	}

	// Input flags
	cmd.Flags().StringP("label", "l", "",
		"Label recorded with the analysis (e.g., browser name)")
	cmd.Flags().StringP("tables", "t", "",
		"Distribution table override file (default: .netrunner.yaml in current or config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().Bool("no-save", false,
		"Do not save the analysis to the history database")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
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

	return runAnalyze(ctx, cfg, logger)
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	var err error

	cfg.Label, err = cmd.Flags().GetString("label")
	if err != nil {
		return nil, err
	}

	cfg.TablePath, err = cmd.Flags().GetString("tables")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	return cfg, nil
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	fp, err := readFingerprint(cfg.InputPath)
	if err != nil {
		return err
	}
	if !fp.HasAnySignal() {
		return config.ErrNoSignals
	}

	table, err := loadTable(cfg, logger)
	if err != nil {
		return err
	}

	analyzer := entropy.NewAnalyzer(table)
	analysis := analyzer.Analyze(fp)
	analysis.Label = cfg.Label
	analysis.AnalyzedAt = time.Now().UTC()

	logger.Debug("analysis complete",
		"label", analysis.Label,
		"score", analysis.UniquenessScore,
		"entropy", analysis.TotalEntropy,
		"risk", analysis.RiskLevel,
	)

	if err := outputAnalysis(cfg, analysis); err != nil {
		return err
	}

	if cfg.SaveToDB {
		if err := saveAnalysis(ctx, cfg, analysis, logger); err != nil {
			logger.Error("failed to save analysis", "error", err)
		}
	}

	return nil
}

// readFingerprint decodes a fingerprint from a file or stdin.
// An empty path or "-" means stdin.
func readFingerprint(path string) (*model.Fingerprint, error) {
	var r io.Reader
	if path == "" || path == "-" {
		// Refuse to hang on an interactive terminal with no piped input
		stat, err := os.Stdin.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return nil, config.ErrNoInput
		}
		r = os.Stdin
	} else {
		f, err := os.Open(path) //nolint:gosec // user-supplied input path is the point
		if err != nil {
			return nil, fmt.Errorf("failed to open fingerprint file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var fp model.Fingerprint
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&fp); err != nil {
		return nil, fmt.Errorf("failed to parse fingerprint JSON: %w", err)
	}

	return &fp, nil
}

// loadTable loads distribution tables, applying YAML overrides when a
// table file is found. If the user explicitly specified a table file that
// doesn't exist, that's an error; otherwise the built-in tables are used.
func loadTable(cfg *config.Config, logger *slog.Logger) (*distribution.Table, error) {
	explicitPath := cfg.TablePath != ""
	tablePath := config.FindTableFile(cfg.TablePath)

	if tablePath == "" {
		if explicitPath {
			return nil, fmt.Errorf("distribution table file not found: %s", cfg.TablePath)
		}
		return distribution.Default(), nil
	}

	table, err := distribution.Load(tablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load distribution tables %s: %w", tablePath, err)
	}

	logger.Debug("distribution table overrides loaded", "path", tablePath)
	return table, nil
}

// newReportWriter creates the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

// openReportOutput resolves the report destination. The caller must invoke
// the returned cleanup function.
func openReportOutput(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports contain fingerprint material; keep them owner-readable only.
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // user-supplied output path is the point
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

// outputAnalysis writes the analysis report in the requested format.
func outputAnalysis(cfg *config.Config, analysis *model.Analysis) error {
	output, cleanup, err := openReportOutput(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = newReportWriter(cfg, output).Write(analysis)
	return err
}

// saveAnalysis persists the analysis to the history database.
func saveAnalysis(ctx context.Context, cfg *config.Config, analysis *model.Analysis, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	id, err := db.SaveAnalysis(ctx, analysis)
	if err != nil {
		return err
	}

	logger.Debug("analysis saved to database", "id", id, "dir", cfg.DBDir)
	return nil
}
