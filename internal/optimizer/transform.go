package optimizer

import (
	"strings"
	"unicode/utf8"

	"github.com/promptsmith/promptsmith/internal/promptdoc"
	"github.com/promptsmith/promptsmith/internal/rules"
)

// TrimTolerance is the safety margin the length enforcer leaves under a
// platform's optimal length, and the slack the length invariant allows.
const TrimTolerance = 20

// applyGuidance appends each guidance block whose marker is absent from
// the text. The registry guarantees every marker occurs in its own block
// text, so appending a block suppresses it on the next pass.
func applyGuidance(text string, blocks []rules.GuidanceBlock) string {
	for _, b := range blocks {
		if !strings.Contains(strings.ToLower(text), b.Marker) {
			text += "\n\n" + b.Text
		}
	}
	return text
}

// enforceLength trims text to fit under max. It drops whole sentences
// from the end first; if not even the first sentence fits, it
// hard-truncates at a rune boundary and appends an ellipsis marker.
func enforceLength(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return truncate(text, max)
}

func truncate(text string, max int) string {
	budget := max - TrimTolerance
	if budget <= 0 {
		budget = max
	}

	sentences := promptdoc.SplitSentences(text)
	var b strings.Builder
	for _, s := range sentences {
		need := len(s)
		if b.Len() > 0 {
			need++
		}
		if b.Len()+need > budget {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}

	if b.Len() > 0 {
		return b.String()
	}

	// No sentence boundary fits; cut mid-sentence.
	cut := budget - 3
	if cut < 1 {
		cut = 1
	}
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
