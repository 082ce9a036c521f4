package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/beratfoglu/NetRunner/internal/config"
	"github.com/beratfoglu/NetRunner/internal/database"
	"github.com/beratfoglu/NetRunner/internal/log"
	"github.com/beratfoglu/NetRunner/internal/report"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously saved analyses",
		Long: `History lists fingerprint analyses saved by the analyze command.

By default it shows a table of recent analyses. Use --id to print a full
saved report, or --labels to list the labels present in the database.

Examples:
  # List recent analyses
  netrunner history

  # List analyses for one browser
  netrunner history --label firefox

  # Show a full saved report
  netrunner history --id 3 --json`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("label", "l", "", "Only list analyses with this label")
	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit, "Maximum number of entries to list")
	cmd.Flags().Int64("id", 0, "Print the full saved report with this ID")
	cmd.Flags().Bool("labels", false, "List distinct labels instead of analyses")
	cmd.Flags().BoolP("json", "j", false, "Output JSON (full report with --id)")
	cmd.Flags().String("db-dir", "", "History database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.Label, err = cmd.Flags().GetString("label")
	if err != nil {
		return err
	}
	cfg.HistoryLimit, err = cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	id, err := cmd.Flags().GetInt64("id")
	if err != nil {
		return err
	}
	listLabels, err := cmd.Flags().GetBool("labels")
	if err != nil {
		return err
	}
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	// History never creates the database: an empty history is not worth
	// leaving an empty file behind.
	db, err := database.Open(cfg.DBDir, database.Options{EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no analysis history found (run 'netrunner analyze' first): %w", err)
	}
	defer db.Close()

	switch {
	case id > 0:
		return showSavedAnalysis(ctx, cfg, db, id)
	case listLabels:
		return showLabels(ctx, db, cmd)
	default:
		return showHistory(ctx, cfg, db, cmd)
	}
}

// showSavedAnalysis prints a full saved report by ID.
func showSavedAnalysis(ctx context.Context, cfg *config.Config, db *database.HistoryDB, id int64) error {
	analysis, err := db.Analysis(ctx, id)
	if err != nil {
		return err
	}
	if analysis == nil {
		return fmt.Errorf("no analysis with ID %d", id)
	}

	var writer report.Writer
	if cfg.JSONReport {
		writer = report.NewJSONWriter(os.Stdout, report.WithPrettyPrint())
	} else {
		writer = report.NewSimpleWriter(os.Stdout, report.WithVerbose(cfg.Verbose))
	}

	_, err = writer.Write(analysis)
	return err
}

// showLabels prints the distinct labels in the database.
func showLabels(ctx context.Context, db *database.HistoryDB, cmd *cobra.Command) error {
	labels, err := db.Labels(ctx)
	if err != nil {
		return err
	}

	if len(labels) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No labeled analyses found.")
		return nil
	}

	for _, label := range labels {
		fmt.Fprintln(cmd.OutOrStdout(), label)
	}
	return nil
}

// showHistory prints a table of recent analyses.
func showHistory(ctx context.Context, cfg *config.Config, db *database.HistoryDB, cmd *cobra.Command) error {
	records, err := db.History(ctx, cfg.Label, cfg.HistoryLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved analyses found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tDATE\tSCORE\tENTROPY\tRISK")
	for _, rec := range records {
		label := rec.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%.2f\t%s\n",
			rec.ID,
			label,
			rec.Timestamp.Format("2006-01-02 15:04"),
			rec.UniquenessScore,
			rec.TotalEntropy,
			rec.RiskLevel,
		)
	}
	return w.Flush()
}
