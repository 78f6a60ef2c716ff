package promptdoc

import (
	"strings"
	"testing"
)

func TestParse_Structure(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantHeadings bool
		wantLists    bool
		wantCode     bool
	}{
		{
			name: "plain sentence",
			text: "Tell me about dogs.",
		},
		{
			name:         "markdown heading",
			text:         "# Task\n\nSummarize the report.",
			wantHeadings: true,
		},
		{
			name:      "bullet list",
			text:      "Cover these:\n\n- size\n- temperament\n- lifespan",
			wantLists: true,
		},
		{
			name:     "code fence",
			text:     "Fix this function:\n\n```\nfunc add(a, b int) int { return a - b }\n```",
			wantCode: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.text)
			if doc.HasHeadings != tt.wantHeadings {
				t.Errorf("HasHeadings = %v, want %v", doc.HasHeadings, tt.wantHeadings)
			}
			if doc.HasLists != tt.wantLists {
				t.Errorf("HasLists = %v, want %v", doc.HasLists, tt.wantLists)
			}
			if doc.HasCodeFence != tt.wantCode {
				t.Errorf("HasCodeFence = %v, want %v", doc.HasCodeFence, tt.wantCode)
			}
		})
	}
}

func TestParse_WordsAndSentences(t *testing.T) {
	doc := Parse("First sentence here. Second one follows! Third asks a question?")

	if doc.Words != 10 {
		t.Errorf("Words = %d, want 10", doc.Words)
	}
	if len(doc.Sentences) != 3 {
		t.Fatalf("Sentences = %d, want 3", len(doc.Sentences))
	}
	if doc.Sentences[1] != "Second one follows!" {
		t.Errorf("Sentences[1] = %q", doc.Sentences[1])
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "terminator kept with sentence",
			text: "One. Two.",
			want: []string{"One.", "Two."},
		},
		{
			name: "no terminator",
			text: "no punctuation at all",
			want: []string{"no punctuation at all"},
		},
		{
			name: "decimal point not a boundary",
			text: "Use version 3.5 of the API. Thanks.",
			want: []string{"Use version 3.5 of the API.", "Thanks."},
		},
		{
			name: "trailing fragment",
			text: "Done here. And a tail",
			want: []string{"Done here.", "And a tail"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sentences %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitSentences_Rejoinable(t *testing.T) {
	text := "Alpha beta. Gamma delta! Epsilon?"
	joined := strings.Join(SplitSentences(text), " ")
	if joined != text {
		t.Errorf("rejoined = %q, want %q", joined, text)
	}
}
