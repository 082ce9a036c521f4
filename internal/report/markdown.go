package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/beratfoglu/NetRunner/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, lists, GitHub-flavored
// alerts, and mermaid charts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the analysis in Markdown format.
func (w *MarkdownWriter) Write(analysis *model.Analysis) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, analysis)
	w.writeAlert(md, analysis)
	w.writeComponents(md, analysis)
	w.writeRarityChart(md, analysis)
	w.writeList(md, "Privacy Risks", analysis.Risks, "No privacy risks detected.")
	w.writeList(md, "Recommendations", analysis.Recommendations, "")
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteComparison outputs the comparison in Markdown format.
func (w *MarkdownWriter) WriteComparison(comparison *model.Comparison) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Fingerprint Comparison")
	md.PlainText("")

	rows := make([][]string, len(comparison.Entries))
	for i, e := range comparison.Entries {
		rows[i] = []string{
			e.Name,
			strconv.FormatFloat(e.UniquenessScore, 'f', 1, 64),
			strconv.FormatFloat(e.TotalEntropy, 'f', 2, 64),
			strings.ToUpper(e.RiskLevel.String()),
			strconv.Itoa(e.ComponentCount),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Score", "Entropy (bits)", "Risk", "Components"},
		Rows:   rows,
	})
	md.PlainText("")

	md.Tipf("Most private: **%s**. Least private: **%s**. %s.",
		comparison.MostPrivate, comparison.LeastPrivate, comparison.Recommendation)

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with the score summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, analysis *model.Analysis) {
	md.H1("NetRunner Fingerprint Analysis")
	md.PlainText("")

	rows := [][]string{
		{"Uniqueness Score", fmt.Sprintf("%.1f / 100", analysis.UniquenessScore)},
		{"Total Entropy", fmt.Sprintf("%.2f bits", analysis.TotalEntropy)},
		{"Risk Level", strings.ToUpper(analysis.RiskLevel.String())},
		{"Correlation Discount", boolText(analysis.CorrelationApplied)},
		{"Spoofing Detected", boolText(analysis.SpoofingDetected)},
	}
	if analysis.Label != "" {
		rows = append([][]string{{"Label", "`" + analysis.Label + "`"}}, rows...)
	}
	if !analysis.AnalyzedAt.IsZero() {
		rows = append(rows, []string{"Analyzed", analysis.AnalyzedAt.Format("2006-01-02 15:04:05 MST")})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAlert writes a GitHub-flavored alert matching the risk level.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, analysis *model.Analysis) {
	switch analysis.RiskLevel {
	case model.RiskCritical:
		md.Cautionf("%s", analysis.RiskMessage)
	case model.RiskHigh:
		md.Warningf("%s", analysis.RiskMessage)
	case model.RiskMedium:
		md.Importantf("%s", analysis.RiskMessage)
	default:
		md.Tipf("%s", analysis.RiskMessage)
	}
	md.PlainText("")
}

// writeComponents writes the per-component breakdown table.
func (w *MarkdownWriter) writeComponents(md *markdown.Markdown, analysis *model.Analysis) {
	md.H2("Components")
	md.PlainText("")

	if len(analysis.Components) == 0 {
		md.PlainText("No analyzable signals present.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(analysis.Components))
	for i, c := range analysis.Components {
		rows[i] = []string{
			c.Name,
			"`" + c.Value + "`",
			strconv.FormatFloat(c.Entropy, 'f', 2, 64),
			strconv.FormatFloat(c.Percentage, 'f', 2, 64) + "%",
			string(c.Rarity),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Component", "Value", "Entropy (bits)", "Population", "Rarity"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRarityChart writes a mermaid pie chart of the rarity distribution.
func (w *MarkdownWriter) writeRarityChart(md *markdown.Markdown, analysis *model.Analysis) {
	if len(analysis.Components) == 0 {
		return
	}

	counts := map[model.Rarity]int{}
	for _, c := range analysis.Components {
		counts[c.Rarity]++
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Component Rarity Distribution"),
		piechart.WithShowData(true),
	)
	for _, r := range []model.Rarity{model.RarityCommon, model.RarityUncommon, model.RarityRare, model.RarityVeryRare} {
		if counts[r] > 0 {
			chart.LabelAndIntValue(r.String(), uint64(counts[r]))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeList writes a titled bullet list section.
func (w *MarkdownWriter) writeList(md *markdown.Markdown, title string, items []string, emptyText string) {
	md.H2(title)
	md.PlainText("")

	if len(items) == 0 {
		if emptyText != "" {
			md.PlainText(emptyText)
			md.PlainText("")
		}
		return
	}

	md.BulletList(items...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by NetRunner*")
}

// boolText renders a boolean as Yes/No for report tables.
func boolText(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
