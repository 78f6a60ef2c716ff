package classifier

import (
	"strings"

	"github.com/promptsmith/promptsmith/internal/rules"
)

// minIndicators is the number of indicator keywords a task profile must
// match before the classifier considers it a confident detection. Below
// the threshold the caller falls back to its default style and role.
const minIndicators = 2

// KeywordClassifier scans prompt text for the indicator keyword sets
// declared in the rule registry. Profiles are checked in registry
// declaration order and the first profile clearing the threshold wins,
// so results are deterministic regardless of input phrasing order.
type KeywordClassifier struct {
	reg *rules.Registry
}

// New creates a keyword classifier backed by the given registry.
func New(reg *rules.Registry) *KeywordClassifier {
	return &KeywordClassifier{reg: reg}
}

// DetectTask returns the first task profile whose indicator count clears
// the threshold. ok is false when no profile matches confidently; callers
// must treat that as "use defaults", never as an error.
func (c *KeywordClassifier) DetectTask(text string) (Detection, bool) {
	words := tokenize(text)

	for _, profile := range c.reg.Tasks() {
		matches := 0
		for _, indicator := range profile.Indicators {
			if words[indicator] {
				matches++
			}
		}
		if matches >= minIndicators {
			return Detection{
				Task:            TaskType(profile.ID),
				ExpertRoles:     profile.ExpertRoles,
				SuggestedStyles: profile.SuggestedStyles,
				Matches:         matches,
			}, true
		}
	}

	return Detection{}, false
}

// ExpertRole resolves the persona used to frame a rewritten prompt.
// A style-declared role prefix takes precedence over the task-type
// default: the style was chosen by the user, the task was only inferred.
func (c *KeywordClassifier) ExpertRole(task TaskType, styleID string) (rules.ExpertRole, bool) {
	if style, known := c.reg.StyleRules(styleID); known && style.RolePrefix != "" {
		return rules.ExpertRole{ID: "style:" + style.ID, Prefix: style.RolePrefix}, true
	}

	for _, profile := range c.reg.Tasks() {
		if profile.ID != string(task) {
			continue
		}
		if len(profile.ExpertRoles) > 0 {
			return profile.ExpertRoles[0], true
		}
	}

	return rules.ExpertRole{}, false
}

// tokenize lowercases text and splits it into a word set, stripping
// surrounding punctuation so "API," matches the indicator "api".
func tokenize(text string) map[string]bool {
	words := make(map[string]bool)
	for _, f := range strings.Fields(strings.ToLower(text)) {
		f = strings.Trim(f, ".,;:!?\"'()[]{}")
		if f != "" {
			words[f] = true
		}
	}
	return words
}
