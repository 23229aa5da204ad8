package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownFlattener converts a markdown document into flat text using
// goldmark. LLMs frequently wrap generated test cases in fenced code
// blocks and markdown lists; flattening inlines fence interiors
// verbatim and re-emits list items with their markers so the field and
// step markers survive for the parser.
type MarkdownFlattener struct{}

// NewMarkdownFlattener creates a new MarkdownFlattener.
func NewMarkdownFlattener() *MarkdownFlattener {
	return &MarkdownFlattener{}
}

// SupportedExtensions returns the file extensions this flattener handles.
func (f *MarkdownFlattener) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// Flatten parses the markdown AST and re-emits headings, paragraphs,
// lists and code block interiors as plain text, one block per
// paragraph, preserving blank-line boundaries between blocks.
func (f *MarkdownFlattener) Flatten(content []byte) (string, error) {
	content = stripBOM(content)
	md := goldmark.New()
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	var out []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			out = append(out, strings.Repeat("#", node.Level)+" "+nodeText(node, content), "")
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			out = append(out, rawLines(node, content)...)
			out = append(out, "")
			return ast.WalkSkipChildren, nil

		case *ast.CodeBlock:
			out = append(out, rawLines(node, content)...)
			out = append(out, "")
			return ast.WalkSkipChildren, nil

		case *ast.List:
			f.flattenList(&out, node, content)
			out = append(out, "")
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.TextBlock:
			out = append(out, rawLines(n, content)...)
			out = append(out, "")
			return ast.WalkSkipChildren, nil

		case *ast.ThematicBreak, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n", nil
}

// flattenList re-emits list items with a marker per item. Ordered lists
// keep their numbering start; unordered lists use hyphens.
func (f *MarkdownFlattener) flattenList(out *[]string, list *ast.List, source []byte) {
	index := list.Start
	if index == 0 {
		index = 1
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if _, ok := child.(*ast.List); ok {
				continue
			}
			for _, line := range rawLines(child, source) {
				if line = strings.TrimSpace(line); line != "" {
					parts = append(parts, line)
				}
			}
		}

		marker := "- "
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d. ", index)
			index++
		}
		*out = append(*out, marker+strings.Join(parts, " "))

		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if nested, ok := child.(*ast.List); ok {
				f.flattenList(out, nested, source)
			}
		}
	}
}

// rawLines returns the raw source lines spanned by a block node.
func rawLines(n ast.Node, source []byte) []string {
	lines := n.Lines()
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(source)), "\n"))
	}
	return out
}

// nodeText gets the plain text content of an inline container node.
func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}
