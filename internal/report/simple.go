package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/beratfoglu/NetRunner/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because it works in all terminals and pipes cleanly to files
// or other tools.
type SimpleWriter struct {
	baseWriter

	// verbose enables per-component probability detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the analysis in human-readable format.
func (w *SimpleWriter) Write(analysis *model.Analysis) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, analysis)
	w.writeSummary(&sb, analysis)
	w.writeComponents(&sb, analysis)
	w.writeList(&sb, "PRIVACY RISKS", analysis.Risks, "No privacy risks detected")
	w.writeList(&sb, "RECOMMENDATIONS", analysis.Recommendations, "")
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteComparison outputs the comparison in human-readable format.
func (w *SimpleWriter) WriteComparison(comparison *model.Comparison) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    FINGERPRINT COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  %-20s %-10s %-12s %-10s %s\n",
		"Name", "Score", "Entropy", "Risk", "Components"))
	sb.WriteString("  " + strings.Repeat("-", 64) + "\n")

	for _, e := range comparison.Entries {
		sb.WriteString(fmt.Sprintf("  %-20s %-10.1f %-12.2f %-10s %d\n",
			e.Name, e.UniquenessScore, e.TotalEntropy, e.RiskLevel, e.ComponentCount))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Most private:  %s\n", comparison.MostPrivate))
	sb.WriteString(fmt.Sprintf("Least private: %s\n", comparison.LeastPrivate))
	sb.WriteString(fmt.Sprintf("\n%s\n", comparison.Recommendation))
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, analysis *model.Analysis) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                  NETRUNNER FINGERPRINT ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if analysis.Label != "" {
		sb.WriteString(fmt.Sprintf("Label:         %s\n", analysis.Label))
	}
	if !analysis.AnalyzedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Analyzed:      %s\n", analysis.AnalyzedAt.Format("2006-01-02 15:04:05 MST")))
	}
	sb.WriteString("\n")
}

// writeSummary writes the score summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, analysis *model.Analysis) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Uniqueness Score: %.1f / 100\n", analysis.UniquenessScore))
	sb.WriteString(fmt.Sprintf("  Total Entropy:    %.2f bits\n", analysis.TotalEntropy))
	sb.WriteString(fmt.Sprintf("  Risk Level:       %s\n", strings.ToUpper(analysis.RiskLevel.String())))
	if analysis.CorrelationApplied {
		sb.WriteString("  Correlation:      platform/resolution discount applied\n")
	}
	if analysis.SpoofingDetected {
		sb.WriteString("  Spoofing:         ANTI-FINGERPRINT PARADOX DETECTED\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n\n", analysis.RiskMessage))
}

// writeComponents writes the per-component breakdown.
func (w *SimpleWriter) writeComponents(sb *strings.Builder, analysis *model.Analysis) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("COMPONENTS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(analysis.Components) == 0 {
		sb.WriteString("  No analyzable signals present\n\n")
		return
	}

	for _, c := range analysis.Components {
		sb.WriteString(fmt.Sprintf("  %-22s %-36s %6.2f bits  [%s]\n",
			c.Name, c.Value, c.Entropy, c.Rarity))
		if w.verbose {
			sb.WriteString(fmt.Sprintf("    %-20s shared by %.2f%% of population\n", "", c.Percentage))
		}
	}
	sb.WriteString("\n")
}

// writeList writes a titled bullet list section.
func (w *SimpleWriter) writeList(sb *strings.Builder, title string, items []string, emptyText string) {
	if len(items) == 0 && emptyText == "" {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(items) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", emptyText))
	}
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  * %s\n", item))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by NetRunner\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
