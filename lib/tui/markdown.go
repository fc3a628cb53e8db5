// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough),
		)
	})
	return markdownParserInstance
}

// RenderInlineMarkdown renders short markdown text (a gift message)
// as styled terminal text. Emphasis, strong emphasis, strikethrough,
// and code spans are styled; block structure is flattened to one line
// per paragraph and soft line breaks become spaces. Links render as
// their text.
//
// Output always uses the ANSI256 profile: it is destined for the
// bubbletea view, and auto-detection would strip color whenever
// stderr is not a terminal.
func RenderInlineMarkdown(input string, foreground, background lipgloss.Color) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	walker := &inlineWalker{
		source:     source,
		renderer:   lipRenderer,
		foreground: foreground,
		background: background,
	}
	ast.Walk(document, walker.walk)
	walker.flush()

	return strings.Join(walker.paragraphs, "\n")
}

// inlineWalker accumulates styled inline text per paragraph.
type inlineWalker struct {
	source     []byte
	renderer   *lipgloss.Renderer
	foreground lipgloss.Color
	background lipgloss.Color

	paragraphs []string
	current    strings.Builder

	// Counters rather than booleans so nested emphasis unwinds
	// correctly.
	boldCount          int
	italicCount        int
	strikethroughCount int
}

func (walker *inlineWalker) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	delta := 1
	if !entering {
		delta = -1
	}

	switch node := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if !entering {
			walker.flush()
		}

	case *ast.Heading:
		walker.boldCount += delta
		if !entering {
			walker.flush()
		}

	case *ast.Emphasis:
		if node.Level >= 2 {
			walker.boldCount += delta
		} else {
			walker.italicCount += delta
		}

	case *extast.Strikethrough:
		walker.strikethroughCount += delta

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					code.Write(textNode.Segment.Value(walker.source))
				}
			}
			walker.current.WriteString(walker.style().Reverse(true).Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Text:
		if entering {
			value := string(node.Segment.Value(walker.source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				value += " "
			}
			walker.current.WriteString(walker.style().Render(value))
		}

	case *ast.String:
		if entering {
			walker.current.WriteString(walker.style().Render(string(node.Value)))
		}
	}

	return ast.WalkContinue, nil
}

// style returns the lipgloss style for the current emphasis state.
func (walker *inlineWalker) style() lipgloss.Style {
	return walker.renderer.NewStyle().
		Foreground(walker.foreground).
		Background(walker.background).
		Bold(walker.boldCount > 0).
		Italic(walker.italicCount > 0).
		Strikethrough(walker.strikethroughCount > 0)
}

// flush closes the current paragraph, if it has any content.
func (walker *inlineWalker) flush() {
	if walker.current.Len() == 0 {
		return
	}
	walker.paragraphs = append(walker.paragraphs, walker.current.String())
	walker.current.Reset()
}
