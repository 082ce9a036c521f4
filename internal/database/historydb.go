package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/beratfoglu/NetRunner/internal/model"
)

// HistoryDB provides SQLite-based storage for fingerprint analysis results.
// It manages connection pooling and provides methods for saving and
// retrieving analyses.
//
// Design decision: We use a single database file for all labels rather
// than one file per browser. Comparing analyses across labels is the whole
// point of keeping history, and a single file keeps backup/restore trivial.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "netrunner.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; the CLI is single-user anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Analyses store complete fingerprint analysis results as JSON,
	-- with score and risk columns denormalized for cheap history listings.
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL DEFAULT '',
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		uniqueness_score REAL NOT NULL,
		total_entropy REAL NOT NULL,
		risk_level TEXT NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_label ON analyses(label);
	CREATE INDEX IF NOT EXISTS idx_analyses_timestamp ON analyses(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveAnalysis persists an analysis result and returns its database ID.
func (hdb *HistoryDB) SaveAnalysis(ctx context.Context, analysis *model.Analysis) (int64, error) {
	resultJSON, err := json.Marshal(analysis)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize analysis: %w", err)
	}

	query := `
	INSERT INTO analyses (label, uniqueness_score, total_entropy, risk_level, result_json)
	VALUES (?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		analysis.Label,
		analysis.UniquenessScore,
		analysis.TotalEntropy,
		string(analysis.RiskLevel),
		string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save analysis: %w", err)
	}

	return result.LastInsertId()
}

// AnalysisRecord contains summary information about a stored analysis.
// This is used for displaying history without loading the full result.
type AnalysisRecord struct {
	// ID is the unique identifier of the analysis in the database.
	ID int64

	// Label is the name recorded with the analysis, typically a browser name.
	Label string

	// Timestamp is when the analysis was saved.
	Timestamp time.Time

	// UniquenessScore is the 0-100 uniqueness score.
	UniquenessScore float64

	// TotalEntropy is the accumulated entropy in bits.
	TotalEntropy float64

	// RiskLevel is the tracking risk classification.
	RiskLevel model.RiskLevel
}

// History retrieves analysis summaries, most recent first.
// If label is non-empty, only analyses with that label are returned.
// limit bounds the number of rows; zero or negative means no limit.
func (hdb *HistoryDB) History(ctx context.Context, label string, limit int) ([]AnalysisRecord, error) {
	query := `
	SELECT id, label, timestamp, uniqueness_score, total_entropy, risk_level
	FROM analyses
	WHERE 1=1
	`
	args := make([]any, 0, 2)

	if label != "" {
		query += " AND label = ?"
		args = append(args, label)
	}

	query += " ORDER BY timestamp DESC, id DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var results []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var timestamp string
		var riskLevel string

		err := rows.Scan(
			&rec.ID,
			&rec.Label,
			&timestamp,
			&rec.UniquenessScore,
			&rec.TotalEntropy,
			&riskLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		rec.Timestamp = parseTimestamp(timestamp)
		rec.RiskLevel = model.RiskLevel(riskLevel)
		results = append(results, rec)
	}

	return results, rows.Err()
}

// Analysis retrieves a full analysis result by its database ID.
// Returns nil without error when no analysis has that ID.
func (hdb *HistoryDB) Analysis(ctx context.Context, id int64) (*model.Analysis, error) {
	query := `
	SELECT result_json FROM analyses
	WHERE id = ?
	`

	var resultJSON string
	err := hdb.db.QueryRowContext(ctx, query, id).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(resultJSON), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}

	return &analysis, nil
}

// Latest retrieves the most recent full analysis for a label.
// Returns nil without error when the label has no analyses.
func (hdb *HistoryDB) Latest(ctx context.Context, label string) (*model.Analysis, error) {
	query := `
	SELECT result_json FROM analyses
	WHERE label = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 1
	`

	var resultJSON string
	err := hdb.db.QueryRowContext(ctx, query, label).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest analysis: %w", err)
	}

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(resultJSON), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}

	return &analysis, nil
}

// Labels returns the distinct non-empty labels present in the database.
func (hdb *HistoryDB) Labels(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT label FROM analyses
	WHERE label != ''
	ORDER BY label
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
