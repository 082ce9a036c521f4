// Package report generates analysis reports in multiple output formats.
//
// It supports the following formats:
//   - JSON: Machine-readable format for tool integration
//   - Simple: Human-readable terminal output
//   - Markdown: GitHub Flavored Markdown for documentation and sharing
//
// All writers implement the Writer interface, allowing the output format
// to be selected at runtime via CLI flags.
package report
