// Package promptdoc analyzes the textual structure of a prompt.
//
// The scorer and the optimizer both gate decisions on whether a prompt
// already carries structure (headings, lists, code fences), so the
// analysis lives in one place and is computed once per pipeline run.
package promptdoc

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Doc holds the structural facts about a prompt.
type Doc struct {
	Text         string
	Words        int
	Sentences    []string
	HasHeadings  bool
	HasLists     bool
	HasCodeFence bool
	Headings     []string
}

// Parse analyzes prompt text. Prompts are treated as markdown: many users
// paste markdown-formatted prompts, and plain text parses as a single
// paragraph with no structural nodes.
func Parse(content string) *Doc {
	doc := &Doc{
		Text:      content,
		Words:     len(strings.Fields(content)),
		Sentences: SplitSentences(content),
	}

	md := goldmark.New()
	reader := text.NewReader([]byte(content))
	root := md.Parser().Parse(reader)
	source := []byte(content)

	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			doc.HasHeadings = true
			doc.Headings = append(doc.Headings, string(node.Text(source)))
		case *ast.List:
			doc.HasLists = true
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			doc.HasCodeFence = true
		}

		return ast.WalkContinue, nil
	})

	return doc
}

// SplitSentences splits text into sentences at '.', '!' and '?' boundaries.
// Terminators stay attached to their sentence so the pieces can be rejoined
// losslessly (modulo inter-sentence whitespace).
func SplitSentences(content string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(content)
	for i, r := range runes {
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Only treat the terminator as a boundary when followed by
		// whitespace or end of text. Keeps "3.5" and "e.g." intact
		// in the common case.
		atEnd := i == len(runes)-1
		if !atEnd && !unicode.IsSpace(runes[i+1]) {
			continue
		}

		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// WordCount returns the whitespace-delimited word count of text.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
