// Package rules provides the static transformation configuration:
// per-style guidance, per-platform constraints, and per-task keyword
// profiles. The registry is loaded once at startup and read-only after.
package rules

// GuidanceBlock is an append-only text block gated by a marker phrase.
// The optimizer skips a block when the prompt already contains its marker,
// which is what makes repeated optimization converge after one pass. The
// marker must therefore occur in the block's own text; Load enforces this.
type GuidanceBlock struct {
	// Marker is the lowercase phrase whose presence suppresses the block
	Marker string `yaml:"marker"`

	// Text is appended to the prompt when the marker is absent
	Text string `yaml:"text"`
}

// StyleRules configures one target writing style.
type StyleRules struct {
	// ID is the style identifier (e.g., "professional", "academic")
	ID string `yaml:"id"`

	// Name is the human-readable style name
	Name string `yaml:"name"`

	// Tone describes the register the style aims for
	Tone string `yaml:"tone"`

	// RolePrefix optionally overrides the task-derived expert role.
	// A user-chosen style is a stronger signal than task classification.
	RolePrefix string `yaml:"role_prefix"`

	// Guidance blocks appended during the style pass
	Guidance []GuidanceBlock `yaml:"guidance"`
}

// PlatformRules configures one destination chat platform.
type PlatformRules struct {
	// ID is the platform identifier (e.g., "chatgpt", "perplexity")
	ID string `yaml:"id"`

	// Name is the human-readable platform name
	Name string `yaml:"name"`

	// MaxOptimalLength is the character budget the platform responds
	// best to; the pipeline trims the optimized prompt to fit it.
	MaxOptimalLength int `yaml:"max_optimal_length"`

	// Tone describes the platform's preferred register
	Tone string `yaml:"tone"`

	// Guidance blocks appended during the platform pass
	Guidance []GuidanceBlock `yaml:"guidance"`
}

// ExpertRole is a persona prefix used to frame a rewritten prompt.
type ExpertRole struct {
	ID     string `yaml:"id"`
	Prefix string `yaml:"prefix"`
}

// TaskProfile configures keyword detection and defaults for one task type.
// Profiles are matched in declaration order, which is also the tie-break
// order, so the YAML sequence order is load-bearing.
type TaskProfile struct {
	// ID is the task type identifier (e.g., "business", "technical")
	ID string `yaml:"id"`

	// Indicators are the lowercase keywords that vote for this task type
	Indicators []string `yaml:"indicators"`

	// ExpertRoles are candidate personas, strongest first
	ExpertRoles []ExpertRole `yaml:"expert_roles"`

	// SuggestedStyles are candidate styles, strongest first
	SuggestedStyles []string `yaml:"suggested_styles"`
}
