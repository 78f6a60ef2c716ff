package reporter

import (
	"encoding/json"
	"io"

	"github.com/promptsmith/promptsmith/internal/ledger"
	"github.com/promptsmith/promptsmith/internal/optimizer"
	"github.com/promptsmith/promptsmith/internal/scorer"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// Optimization outputs an optimization result as JSON
func (r *JSONReporter) Optimization(result *optimizer.Result) error {
	return r.encode(result)
}

// Score outputs a quality score as JSON
func (r *JSONReporter) Score(quality scorer.Quality) error {
	return r.encode(quality)
}

// Analytics outputs a ledger snapshot as JSON
func (r *JSONReporter) Analytics(stats ledger.Stats) error {
	return r.encode(stats)
}

func (r *JSONReporter) encode(v any) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
