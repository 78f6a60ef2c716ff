package rules

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/promptsmith/promptsmith/internal/errors"
)

//go:embed configs/*.yaml
var configFS embed.FS

// DefaultStyle is substituted for unknown style ids.
const DefaultStyle = "default"

// DefaultPlatform is substituted for unknown platform ids.
const DefaultPlatform = "default"

// Registry is the read-only configuration store for styles, platforms,
// and task profiles. Lookups are fail-soft: an unknown id returns the
// default record rather than an error, because optimization must never
// hard-fail solely due to an unrecognized platform or style.
type Registry struct {
	styles    []StyleRules
	platforms []PlatformRules
	tasks     []TaskProfile

	styleIndex    map[string]int
	platformIndex map[string]int
}

type styleFile struct {
	Styles []StyleRules `yaml:"styles"`
}

type platformFile struct {
	Platforms []PlatformRules `yaml:"platforms"`
}

type taskFile struct {
	Tasks []TaskProfile `yaml:"tasks"`
}

// Load builds a registry from the embedded configuration and validates it.
// Validation happens once here so unknown or malformed entries are caught
// at startup rather than scattered through every optimize call.
func Load() (*Registry, error) {
	r := &Registry{
		styleIndex:    make(map[string]int),
		platformIndex: make(map[string]int),
	}

	var sf styleFile
	if err := readConfig("configs/styles.yaml", &sf); err != nil {
		return nil, err
	}
	r.styles = sf.Styles

	var pf platformFile
	if err := readConfig("configs/platforms.yaml", &pf); err != nil {
		return nil, err
	}
	r.platforms = pf.Platforms

	var tf taskFile
	if err := readConfig("configs/tasks.yaml", &tf); err != nil {
		return nil, err
	}
	r.tasks = tf.Tasks

	if err := r.reindex(); err != nil {
		return nil, err
	}

	return r, nil
}

// ApplyOverrides merges a user-supplied YAML document over the built-in
// configuration. Entries with a matching id replace the built-in record;
// new ids are appended. The merged registry is re-validated.
func (r *Registry) ApplyOverrides(data []byte) error {
	var overrides struct {
		Styles    []StyleRules    `yaml:"styles"`
		Platforms []PlatformRules `yaml:"platforms"`
		Tasks     []TaskProfile   `yaml:"tasks"`
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return errors.RulesInvalid(fmt.Sprintf("parsing overrides: %v", err))
	}

	for _, s := range overrides.Styles {
		if i, ok := r.styleIndex[s.ID]; ok {
			r.styles[i] = s
		} else {
			r.styles = append(r.styles, s)
		}
	}
	for _, p := range overrides.Platforms {
		if i, ok := r.platformIndex[p.ID]; ok {
			r.platforms[i] = p
		} else {
			r.platforms = append(r.platforms, p)
		}
	}
	for _, t := range overrides.Tasks {
		replaced := false
		for i := range r.tasks {
			if r.tasks[i].ID == t.ID {
				r.tasks[i] = t
				replaced = true
				break
			}
		}
		if !replaced {
			r.tasks = append(r.tasks, t)
		}
	}

	return r.reindex()
}

func readConfig(name string, out any) error {
	data, err := configFS.ReadFile(name)
	if err != nil {
		return errors.RulesInvalid(fmt.Sprintf("reading %s: %v", name, err))
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.RulesInvalid(fmt.Sprintf("parsing %s: %v", name, err))
	}
	return nil
}

func (r *Registry) reindex() error {
	r.styleIndex = make(map[string]int, len(r.styles))
	for i, s := range r.styles {
		if s.ID == "" {
			return errors.RulesInvalid(fmt.Sprintf("style at position %d has no id", i))
		}
		if _, dup := r.styleIndex[s.ID]; dup {
			return errors.RulesInvalid(fmt.Sprintf("duplicate style id %q", s.ID))
		}
		if err := validateGuidance("style", s.ID, s.Guidance); err != nil {
			return err
		}
		r.styleIndex[s.ID] = i
	}
	if _, ok := r.styleIndex[DefaultStyle]; !ok {
		return errors.RulesInvalid("no default style configured")
	}

	r.platformIndex = make(map[string]int, len(r.platforms))
	for i, p := range r.platforms {
		if p.ID == "" {
			return errors.RulesInvalid(fmt.Sprintf("platform at position %d has no id", i))
		}
		if _, dup := r.platformIndex[p.ID]; dup {
			return errors.RulesInvalid(fmt.Sprintf("duplicate platform id %q", p.ID))
		}
		if p.MaxOptimalLength <= 0 {
			return errors.RulesInvalid(fmt.Sprintf("platform %q has no max_optimal_length", p.ID))
		}
		if err := validateGuidance("platform", p.ID, p.Guidance); err != nil {
			return err
		}
		r.platformIndex[p.ID] = i
	}
	if _, ok := r.platformIndex[DefaultPlatform]; !ok {
		return errors.RulesInvalid("no default platform configured")
	}

	for _, t := range r.tasks {
		if t.ID == "" {
			return errors.RulesInvalid("task profile has no id")
		}
		if len(t.Indicators) == 0 {
			return errors.RulesInvalid(fmt.Sprintf("task %q has no indicators", t.ID))
		}
		for _, style := range t.SuggestedStyles {
			if _, ok := r.styleIndex[style]; !ok {
				return errors.RulesInvalid(fmt.Sprintf("task %q suggests unknown style %q", t.ID, style))
			}
		}
	}

	return nil
}

// validateGuidance enforces the self-gating invariant: a block's marker
// must occur in its own text. Once the block has been appended, the marker
// is present and the block will not be appended again.
func validateGuidance(kind, id string, blocks []GuidanceBlock) error {
	for _, b := range blocks {
		if b.Marker == "" || b.Text == "" {
			return errors.RulesInvalid(fmt.Sprintf("%s %q has a guidance block with empty marker or text", kind, id))
		}
		if b.Marker != strings.ToLower(b.Marker) {
			return errors.RulesInvalid(fmt.Sprintf("%s %q marker %q must be lowercase", kind, id, b.Marker))
		}
		if !strings.Contains(strings.ToLower(b.Text), b.Marker) {
			return errors.RulesInvalid(fmt.Sprintf("%s %q marker %q does not occur in its guidance text", kind, id, b.Marker))
		}
	}
	return nil
}

// StyleRules returns the rules for a style id. The second return value is
// false when the id was unknown and the default record was substituted.
func (r *Registry) StyleRules(id string) (StyleRules, bool) {
	if i, ok := r.styleIndex[id]; ok {
		return r.styles[i], true
	}
	return r.styles[r.styleIndex[DefaultStyle]], false
}

// PlatformRules returns the rules for a platform id. The second return
// value is false when the id was unknown and the default was substituted.
func (r *Registry) PlatformRules(id string) (PlatformRules, bool) {
	if i, ok := r.platformIndex[id]; ok {
		return r.platforms[i], true
	}
	return r.platforms[r.platformIndex[DefaultPlatform]], false
}

// KnownPlatform reports whether id names a configured platform.
func (r *Registry) KnownPlatform(id string) bool {
	_, ok := r.platformIndex[id]
	return ok
}

// Styles returns all configured styles in declaration order.
func (r *Registry) Styles() []StyleRules {
	return r.styles
}

// Platforms returns all configured platforms in declaration order.
func (r *Registry) Platforms() []PlatformRules {
	return r.platforms
}

// Tasks returns all task profiles in declaration order. Order matters:
// the classifier breaks ties by declaration order, never by input order.
func (r *Registry) Tasks() []TaskProfile {
	return r.tasks
}
