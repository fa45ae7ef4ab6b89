package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// renderer is stateless, so a single instance is shared across requests
// without locking.
var renderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
		extension.TaskList,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// RenderMarkdown compiles a markdown body into HTML for page rendering.
func RenderMarkdown(body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return template.HTML(buf.String()), nil
}
