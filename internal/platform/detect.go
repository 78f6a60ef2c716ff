// Package platform resolves which AI chat platform a prompt targets when
// the caller does not say. The detector is an external collaborator from
// the pipeline's point of view; the pipeline only sees the interface.
package platform

import (
	"os"
	"strings"

	"github.com/promptsmith/promptsmith/internal/rules"
)

// Info identifies a detected platform.
type Info struct {
	ID   string
	Name string
}

// Detector detects the current target platform.
type Detector interface {
	// DetectCurrentPlatform returns the detected platform, or ok=false
	// when there is no confident detection.
	DetectCurrentPlatform() (Info, bool)
}

// EnvDetector reads the target platform from the PROMPTSMITH_PLATFORM
// environment variable and validates it against the registry.
type EnvDetector struct {
	reg *rules.Registry
}

// NewEnvDetector creates a detector backed by the given registry.
func NewEnvDetector(reg *rules.Registry) *EnvDetector {
	return &EnvDetector{reg: reg}
}

// DetectCurrentPlatform implements Detector.
func (d *EnvDetector) DetectCurrentPlatform() (Info, bool) {
	id := strings.ToLower(strings.TrimSpace(os.Getenv("PROMPTSMITH_PLATFORM")))
	if id == "" || !d.reg.KnownPlatform(id) {
		return Info{}, false
	}

	p, _ := d.reg.PlatformRules(id)
	return Info{ID: p.ID, Name: p.Name}, true
}

// None is a Detector that never detects anything; callers fall through
// to their defaults.
type None struct{}

func (None) DetectCurrentPlatform() (Info, bool) {
	return Info{}, false
}
