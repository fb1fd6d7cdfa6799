package render

import (
	"cmp"

	"github.com/matzehuels/termgrid/pkg/graph"
)

// Config controls how a graph is drawn. The zero value is not usable;
// start from NewConfig and derive variants with the With methods, all
// of which copy.
type Config[ID cmp.Ordered, T any] struct {
	formatter     graph.NodeFormatter[ID, T]
	palette       []Color
	maxPerLevel   int
	maxGlyphWidth int
	spacing       int
	glyphs        LineGlyphs
	reorder       bool
}

// NewConfig returns a configuration drawing at most maxPerLevel nodes
// per horizontal level with the given formatter. Colors start disabled,
// glyphs are ASCII, level width is unlimited, connector lanes are one
// blank line apart and connector reordering is on.
func NewConfig[ID cmp.Ordered, T any](nfmt graph.NodeFormatter[ID, T], maxPerLevel int) Config[ID, T] {
	if maxPerLevel < 1 {
		maxPerLevel = 1
	}
	return Config[ID, T]{
		formatter:   nfmt,
		maxPerLevel: maxPerLevel,
		spacing:     1,
		glyphs:      ASCIIGlyphs(),
		reorder:     true,
	}
}

// WithFormatter returns a copy using the given node formatter.
func (c Config[ID, T]) WithFormatter(nfmt graph.NodeFormatter[ID, T]) Config[ID, T] {
	c.formatter = nfmt
	return c
}

// WithMaxPerLevel returns a copy placing at most count nodes on one
// level. Values below one are raised to one.
func (c Config[ID, T]) WithMaxPerLevel(count int) Config[ID, T] {
	if count < 1 {
		count = 1
	}
	c.maxPerLevel = count
	return c
}

// WithMaxGlyphWidth returns a copy limiting the rendered width of each
// level to width characters. Zero removes the limit. A node whose label
// alone exceeds the limit still gets a level of its own.
func (c Config[ID, T]) WithMaxGlyphWidth(width int) Config[ID, T] {
	if width < 0 {
		width = 0
	}
	c.maxGlyphWidth = width
	return c
}

// WithSpacing returns a copy placing n blank lines between the
// connector lanes of one gap.
func (c Config[ID, T]) WithSpacing(n int) Config[ID, T] {
	if n < 0 {
		n = 0
	}
	c.spacing = n
	return c
}

// DefaultColors returns a copy coloring edges with DefaultPalette.
func (c Config[ID, T]) DefaultColors() Config[ID, T] {
	c.palette = DefaultPalette()
	return c
}

// WithColors returns a copy coloring edges with the given palette,
// assigned round-robin in drawing order.
func (c Config[ID, T]) WithColors(palette ...Color) Config[ID, T] {
	c.palette = palette
	return c
}

// DisableColors returns a copy with coloring turned off.
func (c Config[ID, T]) DisableColors() Config[ID, T] {
	c.palette = nil
	return c
}

// WithLineGlyphs returns a copy drawing lines with the given glyphs.
func (c Config[ID, T]) WithLineGlyphs(glyphs LineGlyphs) Config[ID, T] {
	c.glyphs = glyphs
	return c
}

// WithReorder returns a copy with connector reordering switched on or
// off. Reordering shortens horizontal runs by sorting the connectors
// of each gap by their mean target column; switching it off keeps the
// discovery order, which can help when comparing drawings.
func (c Config[ID, T]) WithReorder(enabled bool) Config[ID, T] {
	c.reorder = enabled
	return c
}
