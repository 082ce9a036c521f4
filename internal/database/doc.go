// Package database provides SQLite-based persistence for fingerprint
// analysis results. It stores each analysis with its label, score, and
// full JSON result so users can track how their uniqueness changes over
// time, across browsers, and after privacy tooling changes.
//
// The database uses modernc.org/sqlite, a pure-Go SQLite implementation
// that requires no CGO and works across all platforms.
package database
