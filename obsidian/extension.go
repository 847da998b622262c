package obsidian

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

const (
	// Ahead of the standard link parser (200) so [[ and ![[ win over
	// link label syntax.
	linkParserPriority = 150

	transformerPriority  = 100
	nodeRendererPriority = 500
)

// Extension wires the dialect into a goldmark.Markdown: the wikilink and
// embed parser, the callout transformer, and the canonical render
// functions for the dialect kinds.
var Extension goldmark.Extender = &extender{}

type extender struct{}

// Extend implements goldmark.Extender.
func (e *extender) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(
			util.Prioritized(NewLinkParser(), linkParserPriority),
		),
		parser.WithASTTransformers(
			util.Prioritized(NewCalloutTransformer(), transformerPriority),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(NewRenderer(), nodeRendererPriority),
		),
	)
}
