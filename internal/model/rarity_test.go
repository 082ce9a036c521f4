package model

import "testing"

// TestRarityForProbability tests the probability-to-bucket partition.
func TestRarityForProbability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		probability float64
		want        Rarity
	}{
		{"very common value", 0.65, RarityCommon},
		{"exactly at common boundary", 0.20, RarityCommon},
		{"just below common boundary", 0.19999, RarityUncommon},
		{"uncommon value", 0.10, RarityUncommon},
		{"exactly at uncommon boundary", 0.05, RarityUncommon},
		{"just below uncommon boundary", 0.04999, RarityRare},
		{"rare value", 0.02, RarityRare},
		{"exactly at rare boundary", 0.01, RarityRare},
		{"just below rare boundary", 0.00999, RarityVeryRare},
		{"fallback probability", 0.001, RarityVeryRare},
		{"zero probability", 0, RarityVeryRare},
		{"full probability", 1.0, RarityCommon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RarityForProbability(tt.probability); got != tt.want {
				t.Errorf("RarityForProbability(%g) = %q, want %q", tt.probability, got, tt.want)
			}
		})
	}
}

// TestRarityString tests the wire representation.
func TestRarityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rarity Rarity
		want   string
	}{
		{RarityCommon, "common"},
		{RarityUncommon, "uncommon"},
		{RarityRare, "rare"},
		{RarityVeryRare, "very_rare"},
	}

	for _, tt := range tests {
		if got := tt.rarity.String(); got != tt.want {
			t.Errorf("Rarity.String() = %q, want %q", got, tt.want)
		}
	}
}
