package platform

import (
	"testing"

	"github.com/promptsmith/promptsmith/internal/rules"
)

func TestEnvDetector(t *testing.T) {
	reg, err := rules.Load()
	if err != nil {
		t.Fatalf("rules.Load() error: %v", err)
	}
	d := NewEnvDetector(reg)

	tests := []struct {
		name   string
		env    string
		wantID string
		wantOK bool
	}{
		{"known platform", "claude", "claude", true},
		{"case and whitespace normalized", "  ChatGPT ", "chatgpt", true},
		{"unknown platform", "not-a-real-platform", "", false},
		{"unset", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROMPTSMITH_PLATFORM", tt.env)

			info, ok := d.DetectCurrentPlatform()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if info.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", info.ID, tt.wantID)
			}
		})
	}
}

func TestNone(t *testing.T) {
	if _, ok := (None{}).DetectCurrentPlatform(); ok {
		t.Error("None detected a platform")
	}
}
