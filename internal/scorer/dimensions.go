package scorer

import (
	"regexp"
	"strings"

	"github.com/promptsmith/promptsmith/internal/promptdoc"
)

// Heuristic thresholds. Tunable parameters, not behavior anyone depends
// on bit-for-bit; keep them together so retuning is a one-file change.
const (
	minFocusedWords  = 8
	maxFocusedWords  = 150
	minDetailedWords = 20
	minSpecificWords = 30
	maxAvgSentence   = 25
	minContextChars  = 300
	minDetailChars   = 200
)

// VaguePhrases are the low-information markers that drag clarity and
// specificity down.
var VaguePhrases = []string{
	"stuff",
	"things",
	"something",
	"somehow",
	"kind of",
	"sort of",
	"a lot of",
	"very good",
	"etc",
}

var imperativeOpeners = map[string]bool{
	"write": true, "explain": true, "create": true, "list": true,
	"describe": true, "summarize": true, "analyze": true, "compare": true,
	"generate": true, "draft": true, "review": true, "translate": true,
	"design": true, "give": true, "tell": true, "build": true,
}

var structureMarkers = []string{
	"structure", "format", "bullet", "outline", "step", "heading", "numbered list",
}

var outputMarkers = []string{
	"include", "should", "must", "respond with", "provide", "output",
}

var contextMarkers = []string{
	"context", "background", "given that", "i am", "we are", "working on", "as part of",
}

var exampleMarkers = []string{
	"example", "e.g.", "for instance", "such as",
}

var constraintMarkers = []string{
	"exactly", "at least", "at most", "no more than", "limit",
	"within", "between", "specific", "constraint",
}

var digitRe = regexp.MustCompile(`\d`)

func scoreClarity(doc *promptdoc.Doc, lower string) int {
	score := 50

	if doc.Words >= minFocusedWords && doc.Words <= maxFocusedWords {
		score += 15
	}

	score -= 8 * CountVague(lower)

	if len(doc.Sentences) > 0 && doc.Words/len(doc.Sentences) <= maxAvgSentence {
		score += 15
	}

	fields := strings.Fields(lower)
	if len(fields) > 0 && imperativeOpeners[strings.Trim(fields[0], ".,!?")] {
		score += 10
	}

	if strings.Contains(lower, "?") {
		score += 5
	}

	return clamp(score)
}

func scoreCompleteness(doc *promptdoc.Doc, lower string) int {
	score := 40

	if doc.Words >= minDetailedWords {
		score += 15
	}
	if HasStructureSignal(doc, lower) {
		score += 20
	}
	if containsAny(lower, outputMarkers) {
		score += 15
	}
	if len(doc.Text) >= minDetailChars {
		score += 10
	}

	return clamp(score)
}

func scoreContext(doc *promptdoc.Doc, lower string) int {
	score := 40

	if containsAny(lower, contextMarkers) {
		score += 25
	}
	if containsAny(lower, exampleMarkers) {
		score += 15
	}
	if doc.HasCodeFence {
		score += 10
	}
	if len(doc.Text) >= minContextChars {
		score += 10
	}

	return clamp(score)
}

func scoreSpecificity(doc *promptdoc.Doc, lower string) int {
	score := 40

	if digitRe.MatchString(lower) {
		score += 15
	}
	if containsAny(lower, constraintMarkers) {
		score += 20
	}
	if doc.Words >= minSpecificWords {
		score += 15
	}

	score -= 5 * CountVague(lower)

	return clamp(score)
}

// CountVague counts distinct vague phrases present in lowercased text.
func CountVague(lower string) int {
	count := 0
	for _, phrase := range VaguePhrases {
		if containsWord(lower, phrase) {
			count++
		}
	}
	return count
}

// HasStructureSignal reports whether the prompt already asks for or
// carries output structure. Used as the gate that keeps the optimizer
// from appending structure guidance twice.
func HasStructureSignal(doc *promptdoc.Doc, lower string) bool {
	if doc.HasHeadings || doc.HasLists {
		return true
	}
	return containsAny(lower, structureMarkers)
}

// HasContextSignal reports whether context/constraint language is present.
func HasContextSignal(lower string) bool {
	return containsAny(lower, contextMarkers) || containsAny(lower, constraintMarkers)
}

// HasRoleFraming reports whether the text already opens a persona.
func HasRoleFraming(lower string) bool {
	return strings.Contains(lower, "you are ") || strings.Contains(lower, "act as ")
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// containsWord matches phrase on word boundaries so "things" does not
// fire inside "nothings" but "a lot of" still matches as a phrase.
func containsWord(lower, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)

		beforeOK := start == 0 || !isWordChar(lower[start-1])
		afterOK := end == len(lower) || !isWordChar(lower[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}
