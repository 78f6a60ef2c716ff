package scorer

import (
	"testing"

	"github.com/promptsmith/promptsmith/internal/rules"
)

func mustScorer(t *testing.T) *Scorer {
	t.Helper()
	reg, err := rules.Load()
	if err != nil {
		t.Fatalf("rules.Load() error: %v", err)
	}
	return New(reg)
}

var sampleTexts = []string{
	"tell me about dogs",
	"stuff about things",
	"Write a 500-word summary of the attached report. Include context about the author and at least 3 examples, such as the budget figures.",
	"Explain how garbage collection works in Go. Structure the answer with headings and include code examples within 400 words.",
	"?",
	"# Task\n\n- explain\n- compare\n- summarize",
}

func TestScore_Bounds(t *testing.T) {
	s := mustScorer(t)

	for _, text := range sampleTexts {
		q := s.Score(text, "default", "default")

		if q.Overall < 0 || q.Overall > 100 {
			t.Errorf("Score(%q).Overall = %d, out of [0,100]", text, q.Overall)
		}
		for name, dim := range q.Breakdown {
			if dim.Score < 0 || dim.Score > 100 {
				t.Errorf("Score(%q).%s = %d, out of [0,100]", text, name, dim.Score)
			}
		}
		for _, name := range []string{DimClarity, DimCompleteness, DimContext, DimSpecificity} {
			if _, ok := q.Breakdown[name]; !ok {
				t.Errorf("Score(%q) missing dimension %q", text, name)
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := mustScorer(t)

	for _, text := range sampleTexts {
		first := s.Score(text, "academic", "perplexity")
		second := s.Score(text, "academic", "perplexity")

		if first.Overall != second.Overall || first.Grade != second.Grade {
			t.Errorf("Score(%q) not deterministic: %v vs %v", text, first, second)
		}
		for name := range first.Breakdown {
			if first.Breakdown[name] != second.Breakdown[name] {
				t.Errorf("Score(%q).%s not deterministic", text, name)
			}
		}
	}
}

func TestScore_VagueScoresLower(t *testing.T) {
	s := mustScorer(t)

	vague := s.Score("make some stuff about things, kind of a lot of it", "default", "default")
	specific := s.Score("Summarize chapter 3 in exactly 200 words, focusing on the two named case studies.", "default", "default")

	if vague.Overall >= specific.Overall {
		t.Errorf("vague overall %d >= specific overall %d", vague.Overall, specific.Overall)
	}
	if vague.Dim(DimSpecificity) >= specific.Dim(DimSpecificity) {
		t.Errorf("vague specificity %d >= specific specificity %d",
			vague.Dim(DimSpecificity), specific.Dim(DimSpecificity))
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		overall int
		want    string
	}{
		{95, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{79, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := gradeFor(tt.overall); got != tt.want {
			t.Errorf("gradeFor(%d) = %q, want %q", tt.overall, got, tt.want)
		}
	}
}

func TestCountVague(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"do the stuff", 1},
		{"nothings wrong here", 0},
		{"a lot of things, sort of", 3},
		{"be precise", 0},
	}

	for _, tt := range tests {
		if got := CountVague(tt.text); got != tt.want {
			t.Errorf("CountVague(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
