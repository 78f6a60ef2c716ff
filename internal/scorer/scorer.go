// Package scorer computes multi-dimensional quality scores for prompt
// text, plus the diff-based confidence and improvement summaries the
// pipeline reports after a rewrite.
//
// Scoring is lexical and deterministic: two calls with identical
// arguments always return identical scores. The downstream improvement
// delta math depends on this.
package scorer

import (
	"strings"

	"github.com/promptsmith/promptsmith/internal/promptdoc"
	"github.com/promptsmith/promptsmith/internal/rules"
)

// Dimension names. These four are load-bearing: the optimizer branches
// on their thresholds when deciding which guidance to append.
const (
	DimClarity      = "clarity"
	DimCompleteness = "completeness"
	DimContext      = "context"
	DimSpecificity  = "specificity"
)

// Dimension holds the score for one quality axis.
type Dimension struct {
	Score int `json:"score"`
}

// Quality is a multi-dimensional 0-100 quality assessment.
type Quality struct {
	Overall   int                  `json:"overall"`
	Grade     string               `json:"grade"`
	Breakdown map[string]Dimension `json:"breakdown"`
}

// Dim returns the score of a named dimension, 0 if absent.
func (q Quality) Dim(name string) int {
	return q.Breakdown[name].Score
}

// Fixed dimension weights combining into the overall score.
const (
	weightClarity      = 0.30
	weightCompleteness = 0.25
	weightContext      = 0.25
	weightSpecificity  = 0.20
)

// Scorer scores prompt text against the rule registry's style and
// platform configuration.
type Scorer struct {
	reg *rules.Registry
}

// New creates a scorer backed by the given registry.
func New(reg *rules.Registry) *Scorer {
	return &Scorer{reg: reg}
}

// Score computes the quality of text targeted at a style and platform.
// Pure function of its inputs; unknown style/platform ids fall back to
// the registry defaults, same as everywhere else.
func (s *Scorer) Score(text, styleID, platformID string) Quality {
	doc := promptdoc.Parse(text)
	return s.ScoreDoc(doc, styleID, platformID)
}

// ScoreDoc scores an already-parsed prompt. The pipeline parses once and
// scores twice (before and after), so the parsed form is the real input.
func (s *Scorer) ScoreDoc(doc *promptdoc.Doc, styleID, platformID string) Quality {
	lower := strings.ToLower(doc.Text)

	clarity := scoreClarity(doc, lower)
	completeness := scoreCompleteness(doc, lower)
	context := scoreContext(doc, lower)
	specificity := scoreSpecificity(doc, lower)

	// Platform adjustment: text past the platform's optimal length reads
	// worse on that platform regardless of its intrinsic clarity.
	if platform, known := s.reg.PlatformRules(platformID); known {
		if len(doc.Text) > platform.MaxOptimalLength {
			clarity = clamp(clarity - 10)
		}
	}

	// Style adjustment: role framing that matches a user-chosen persona
	// style counts toward context.
	if style, known := s.reg.StyleRules(styleID); known && style.RolePrefix != "" {
		if HasRoleFraming(lower) {
			context = clamp(context + 5)
		}
	}

	overall := clamp(int(
		float64(clarity)*weightClarity +
			float64(completeness)*weightCompleteness +
			float64(context)*weightContext +
			float64(specificity)*weightSpecificity + 0.5))

	return Quality{
		Overall: overall,
		Grade:   gradeFor(overall),
		Breakdown: map[string]Dimension{
			DimClarity:      {Score: clarity},
			DimCompleteness: {Score: completeness},
			DimContext:      {Score: context},
			DimSpecificity:  {Score: specificity},
		},
	}
}

func gradeFor(overall int) string {
	switch {
	case overall >= 90:
		return "A"
	case overall >= 80:
		return "B"
	case overall >= 70:
		return "C"
	case overall >= 60:
		return "D"
	default:
		return "F"
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
