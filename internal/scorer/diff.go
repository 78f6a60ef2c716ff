package scorer

import (
	"strings"
)

// Confidence expresses how safely the rewrite preserved the original
// intent, in [0,1]. It is a similarity heuristic, independent of Score:
// the more of the original's vocabulary survives and the less new text
// was introduced, the higher the confidence. It is monotonically
// non-increasing as the edit grows.
func Confidence(original, optimized string) float64 {
	origWords := strings.Fields(strings.ToLower(original))
	optWords := strings.Fields(strings.ToLower(optimized))

	if len(origWords) == 0 {
		return 0
	}

	optSet := make(map[string]bool, len(optWords))
	for _, w := range optWords {
		optSet[strings.Trim(w, ".,;:!?\"'()")] = true
	}

	retained := 0
	for _, w := range origWords {
		if optSet[strings.Trim(w, ".,;:!?\"'()")] {
			retained++
		}
	}
	retention := float64(retained) / float64(len(origWords))

	// Additions dilute confidence more slowly than deletions: appended
	// guidance keeps the original text intact.
	added := len(optWords) - len(origWords)
	if added < 0 {
		added = 0
	}
	growth := float64(added) / float64(len(origWords)+1)
	confidence := retention / (1 + growth/4)

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

// Improvements enumerates the qualitative deltas between the original
// and optimized text. Every claim is backed by an observable textual
// difference; nothing is reported that cannot be seen in the diff.
func Improvements(original, optimized string) []string {
	origLower := strings.ToLower(original)
	optLower := strings.ToLower(optimized)

	var out []string

	gained := func(markers ...string) bool {
		for _, m := range markers {
			if strings.Contains(optLower, m) && !strings.Contains(origLower, m) {
				return true
			}
		}
		return false
	}

	if !HasRoleFraming(origLower) && HasRoleFraming(optLower) {
		out = append(out, "Added expert role framing")
	}
	if gained(structureMarkers...) {
		out = append(out, "Added output structure guidance")
	}
	if gained(contextMarkers...) {
		out = append(out, "Added context guidance")
	}
	if gained(constraintMarkers...) {
		out = append(out, "Added constraint guidance")
	}
	if gained(exampleMarkers...) {
		out = append(out, "Added example guidance")
	}
	if gained("sources", "cite") {
		out = append(out, "Added source citation requirement")
	}
	if gained("current information") {
		out = append(out, "Requested current information")
	}
	if CountVague(optLower) < CountVague(origLower) {
		out = append(out, "Reduced vague language")
	}
	if len(optimized) < len(original) {
		out = append(out, "Trimmed to the platform's optimal length")
	}

	return out
}

// TimeSaved estimates, in seconds, the back-and-forth a user avoids by
// sending the optimized prompt instead of the original. Deterministic
// in the improvement magnitude and whether platform tuning applied;
// a user-facing estimate only, never a correctness-critical value.
func TimeSaved(improvement float64, platformTuned bool) float64 {
	if improvement < 0 {
		improvement = 0
	}

	saved := 20 + improvement*4
	if platformTuned {
		saved += 15
	}

	if saved > 600 {
		saved = 600
	}
	return saved
}
