package render

// LineGlyphs selects the characters used for the edge lines of a
// drawing. Node labels are unaffected.
type LineGlyphs struct {
	Vertical   rune
	Horizontal rune
	Crossing   rune
	ArrowDown  rune
}

// ASCIIGlyphs returns the default glyph set: '|', '-', '+' and 'V'.
func ASCIIGlyphs() LineGlyphs {
	return LineGlyphs{Vertical: '|', Horizontal: '-', Crossing: '+', ArrowDown: 'V'}
}

// WithVertical returns a copy using ch for vertical line segments.
func (g LineGlyphs) WithVertical(ch rune) LineGlyphs {
	g.Vertical = ch
	return g
}

// WithHorizontal returns a copy using ch for horizontal line segments.
func (g LineGlyphs) WithHorizontal(ch rune) LineGlyphs {
	g.Horizontal = ch
	return g
}

// WithCrossing returns a copy using ch where lines cross.
func (g LineGlyphs) WithCrossing(ch rune) LineGlyphs {
	g.Crossing = ch
	return g
}

// WithArrowDown returns a copy using ch for arrowheads.
func (g LineGlyphs) WithArrowDown(ch rune) LineGlyphs {
	g.ArrowDown = ch
	return g
}
