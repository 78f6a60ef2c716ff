package optimizer

import (
	"strings"
	"testing"

	"github.com/promptsmith/promptsmith/internal/rules"
)

func TestApplyGuidance(t *testing.T) {
	blocks := []rules.GuidanceBlock{
		{Marker: "sources", Text: "Cite credible sources."},
		{Marker: "step by step", Text: "Work step by step."},
	}

	t.Run("absent markers appended", func(t *testing.T) {
		got := applyGuidance("tell me about dogs", blocks)
		if !strings.Contains(got, "Cite credible sources.") || !strings.Contains(got, "Work step by step.") {
			t.Errorf("applyGuidance() = %q", got)
		}
	})

	t.Run("present marker suppressed", func(t *testing.T) {
		got := applyGuidance("List your sources.", blocks)
		if strings.Contains(got, "Cite credible sources.") {
			t.Errorf("guidance appended despite present marker: %q", got)
		}
	})

	t.Run("second application is a no-op", func(t *testing.T) {
		once := applyGuidance("tell me about dogs", blocks)
		twice := applyGuidance(once, blocks)
		if twice != once {
			t.Errorf("second pass grew the text:\n%q\nvs\n%q", once, twice)
		}
	})

	t.Run("marker match is case-insensitive", func(t *testing.T) {
		got := applyGuidance("SOURCES are listed below.", blocks[:1])
		if strings.Contains(got, "Cite credible sources.") {
			t.Errorf("guidance appended despite present marker: %q", got)
		}
	})
}

func TestEnforceLength(t *testing.T) {
	t.Run("under the cap untouched", func(t *testing.T) {
		text := "Short prompt."
		if got := enforceLength(text, 100); got != text {
			t.Errorf("enforceLength() = %q", got)
		}
	})

	t.Run("drops trailing sentences", func(t *testing.T) {
		text := strings.Repeat("Padding sentence with several words in it. ", 10)
		got := enforceLength(strings.TrimSpace(text), 200)

		if len(got) > 200 {
			t.Errorf("len = %d, want <= 200", len(got))
		}
		if !strings.HasSuffix(got, ".") {
			t.Errorf("trim did not end at a sentence boundary: %q", got)
		}
	})

	t.Run("hard cut when no sentence fits", func(t *testing.T) {
		text := strings.Repeat("word ", 100) + "end."
		got := enforceLength(text, 60)

		if len(got) > 60 {
			t.Errorf("len = %d, want <= 60", len(got))
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("hard cut lacks ellipsis: %q", got)
		}
	})

	t.Run("hard cut lands on a rune boundary", func(t *testing.T) {
		text := strings.Repeat("héllo wörld ", 50)
		got := enforceLength(text, 40)

		if !strings.HasSuffix(got, "...") {
			t.Fatalf("hard cut lacks ellipsis: %q", got)
		}
		for _, r := range got {
			if r == '�' {
				t.Fatalf("truncation split a rune: %q", got)
			}
		}
	})
}

func TestCapInput(t *testing.T) {
	t.Run("short input passes through", func(t *testing.T) {
		if got := capInput("hello", 100); got != "hello" {
			t.Errorf("capInput() = %q", got)
		}
	})

	t.Run("long input truncated", func(t *testing.T) {
		long := strings.Repeat("A full sentence of padding text. ", 300)
		got := capInput(strings.TrimSpace(long), 5000)
		if len(got) > 5000 {
			t.Errorf("len = %d, want <= 5000", len(got))
		}
	})
}
