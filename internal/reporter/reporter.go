// Package reporter renders optimization results, quality scores, and
// analytics snapshots to the terminal or as JSON.
package reporter

import (
	"github.com/promptsmith/promptsmith/internal/ledger"
	"github.com/promptsmith/promptsmith/internal/optimizer"
	"github.com/promptsmith/promptsmith/internal/scorer"
)

// Reporter defines the interface for outputting results
type Reporter interface {
	// Optimization outputs a full optimization result
	Optimization(result *optimizer.Result) error

	// Score outputs a standalone quality score
	Score(quality scorer.Quality) error

	// Analytics outputs an analytics ledger snapshot
	Analytics(stats ledger.Stats) error
}
