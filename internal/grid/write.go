package grid

import (
	"fmt"
	"io"
	"strings"
)

// Glyphs selects the characters used for line cells.
type Glyphs struct {
	Vertical   rune
	Horizontal rune
	Crossing   rune
	ArrowDown  rune
}

// WriteTo serializes the grid, one line per row with trailing blanks
// trimmed and a newline after every line.
//
// With a non-empty palette, line cells are wrapped in ANSI SGR codes:
// each edge receives the next palette entry the first time one of its
// cells is reached in row-major order, reused for all of its cells and
// wrapping around when edges outnumber entries. Cells shared by
// several edges and node labels stay uncolored.
func (g *Grid) WriteTo(w io.Writer, glyphs Glyphs, palette []int) error {
	colors := make(map[int]int)
	var b strings.Builder
	for _, row := range g.cells {
		last := len(row) - 1
		for last >= 0 && row[last].kind == kindEmpty {
			last--
		}
		b.Reset()
		for x := 0; x <= last; x++ {
			c := row[x]
			ch := g.glyph(c, glyphs)
			if len(palette) > 0 && c.kind != kindEmpty && c.kind != kindNode && c.edge >= 0 {
				code, ok := colors[c.edge]
				if !ok {
					code = palette[len(colors)%len(palette)]
					colors[c.edge] = code
				}
				fmt.Fprintf(&b, "\x1b[%dm%c\x1b[0m", code, ch)
			} else {
				b.WriteRune(ch)
			}
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grid) glyph(c cell, glyphs Glyphs) rune {
	switch c.kind {
	case kindEmpty:
		return ' '
	case kindHorizontal:
		return glyphs.Horizontal
	case kindVertical:
		return glyphs.Vertical
	case kindCross:
		return glyphs.Crossing
	case kindArrow:
		return glyphs.ArrowDown
	case kindNode:
		if c.node < 0 {
			return glyphs.Crossing
		}
		return c.ch
	}
	return ' '
}

// String renders the grid without colors using the given glyphs.
func (g *Grid) String(glyphs Glyphs) string {
	var b strings.Builder
	_ = g.WriteTo(&b, glyphs, nil)
	return b.String()
}
