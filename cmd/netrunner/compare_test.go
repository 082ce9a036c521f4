package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beratfoglu/NetRunner/internal/model"
)

const browsersJSON = `{
	"fingerprints": [
		{
			"name": "tor-browser",
			"data": {
				"platform": "Win32",
				"screen_resolution": "1920x1080",
				"timezone": "UTC-5",
				"language": "en-US"
			}
		},
		{
			"name": "chrome",
			"data": {
				"platform": "MacIntel",
				"screen_resolution": "2560x1440",
				"timezone": "UTC-8",
				"language": "en-US",
				"canvas_hash": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
				"audio_hash": "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
			}
		}
	]
}`

// writeBrowsersFile writes a comparison input document into a temp dir.
func writeBrowsersFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "browsers.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write browsers file: %v", err)
	}
	return path
}

// TestCompareCommand tests the compare command end to end through cobra.
func TestCompareCommand(t *testing.T) {
	t.Parallel()

	t.Run("ranks fingerprints in JSON output", func(t *testing.T) {
		t.Parallel()

		input := writeBrowsersFile(t, browsersJSON)
		output := filepath.Join(t.TempDir(), "comparison.json")

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"compare", input, "--json", "-o", output})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("compare failed: %v", err)
		}

		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("comparison file not written: %v", err)
		}

		var comparison model.Comparison
		if err := json.Unmarshal(data, &comparison); err != nil {
			t.Fatalf("comparison is not valid JSON: %v", err)
		}
		if comparison.MostPrivate != "tor-browser" {
			t.Errorf("MostPrivate = %q, want tor-browser", comparison.MostPrivate)
		}
		if comparison.LeastPrivate != "chrome" {
			t.Errorf("LeastPrivate = %q, want chrome", comparison.LeastPrivate)
		}
		if len(comparison.Entries) != 2 {
			t.Errorf("got %d entries, want 2", len(comparison.Entries))
		}
	})

	t.Run("rejects a single fingerprint", func(t *testing.T) {
		t.Parallel()

		input := writeBrowsersFile(t, `{
			"fingerprints": [
				{"name": "only", "data": {"platform": "Win32"}}
			]
		}`)
		output := filepath.Join(t.TempDir(), "comparison.txt")

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"compare", input, "-o", output})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for a single fingerprint")
		}
		if !strings.Contains(err.Error(), "at least 2 fingerprints") {
			t.Errorf("error = %v, want minimum-count message", err)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		input := writeBrowsersFile(t, `{"fingerprints": [`)

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"compare", input})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})
}
