package entropy

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/beratfoglu/NetRunner/internal/model"
)

// ErrTooFewFingerprints is returned when a comparison is requested for
// fewer than two fingerprints.
var ErrTooFewFingerprints = errors.New("at least 2 fingerprints are required for comparison")

// defaultCompareConcurrency bounds the analysis fan-out. Analyses are pure
// CPU work over an immutable table, so a small fixed limit is enough; the
// input sets are typically a handful of browsers.
const defaultCompareConcurrency = 8

// Compare analyzes each named fingerprint and ranks them by uniqueness
// score, ascending: the most private entry comes first. The sort is stable,
// so among entries with equal scores the most private is the first
// occurrence in the input and the least private the last.
//
// The analyses run concurrently; the engine is purely functional per
// request, so no coordination beyond the result slice indexing is needed.
func (a *Analyzer) Compare(ctx context.Context, fingerprints []model.NamedFingerprint) (*model.Comparison, error) {
	if len(fingerprints) < 2 {
		return nil, ErrTooFewFingerprints
	}

	entries := make([]model.ComparisonEntry, len(fingerprints))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultCompareConcurrency)

	for i, nf := range fingerprints {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			analysis := a.Analyze(&nf.Data)
			entries[i] = model.ComparisonEntry{
				Name:            nf.Name,
				UniquenessScore: analysis.UniquenessScore,
				TotalEntropy:    analysis.TotalEntropy,
				RiskLevel:       analysis.RiskLevel,
				ComponentCount:  len(analysis.Components),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UniquenessScore < entries[j].UniquenessScore
	})

	most := entries[0].Name
	least := entries[len(entries)-1].Name

	return &model.Comparison{
		Entries:        entries,
		MostPrivate:    most,
		LeastPrivate:   least,
		Recommendation: fmt.Sprintf("Use %s for better privacy", most),
	}, nil
}
