package optimizer

import (
	"regexp"
	"strings"

	"github.com/promptsmith/promptsmith/internal/promptdoc"
	"github.com/promptsmith/promptsmith/internal/rules"
	"github.com/promptsmith/promptsmith/internal/scorer"
)

// Core guidance blocks. Like the registry's blocks, each contains its
// own gate keywords so re-optimization does not append it again.
const (
	structureGuidance = "Structure your response with clear headings or bullet points."
	contextGuidance   = "Include any relevant context or background, state constraints explicitly, and be specific about what the output should cover."
)

// vagueSubstitutions swaps low-information words for more concrete ones.
// Applied only when clarity scores below the threshold; in-place but
// meaning-preserving.
var vagueSubstitutions = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bstuff\b`), "material"},
	{regexp.MustCompile(`(?i)\bthings\b`), "specific items"},
	{regexp.MustCompile(`(?i)\ba lot of\b`), "many"},
	{regexp.MustCompile(`(?i)\bkind of\b`), "somewhat"},
	{regexp.MustCompile(`(?i)\bsort of\b`), "somewhat"},
}

// longSentenceWords is the length past which a sentence gets softened.
const longSentenceWords = 28

// corePass applies the unconditional clarity cleanup plus the three
// score-gated, append-only guidance additions. User text is never
// removed here; additions are suppressed when their markers are already
// present so a second pass produces no further growth.
func (e *Engine) corePass(text string, score scorer.Quality, role rules.ExpertRole, hasRole bool) string {
	out := text

	if score.Dim(scorer.DimClarity) < dimThreshold {
		out = substituteVague(out)
		out = softenSentences(out)
	}

	if hasRole && score.Dim(scorer.DimContext) < dimThreshold {
		if !scorer.HasRoleFraming(strings.ToLower(out)) {
			out = role.Prefix + "\n\n" + out
		}
	}

	if score.Dim(scorer.DimCompleteness) < dimThreshold {
		doc := promptdoc.Parse(out)
		if !scorer.HasStructureSignal(doc, strings.ToLower(out)) {
			out += "\n\n" + structureGuidance
		}
	}

	if score.Dim(scorer.DimContext) < dimThreshold || score.Dim(scorer.DimSpecificity) < dimThreshold {
		if !scorer.HasContextSignal(strings.ToLower(out)) {
			out += "\n\n" + contextGuidance
		}
	}

	return out
}

func substituteVague(text string) string {
	for _, sub := range vagueSubstitutions {
		text = sub.re.ReplaceAllString(text, sub.replacement)
	}
	return text
}

// softenSentences breaks overly long sentences at semicolons. Mild on
// purpose: rule-based edits inside user text must not risk meaning. Each
// affected sentence is rewritten in place so the surrounding whitespace,
// paragraph breaks included, stays untouched.
func softenSentences(text string) string {
	for _, s := range promptdoc.SplitSentences(text) {
		if len(strings.Fields(s)) > longSentenceWords && strings.Contains(s, "; ") {
			text = strings.Replace(text, s, strings.ReplaceAll(s, "; ", ". "), 1)
		}
	}
	return text
}
