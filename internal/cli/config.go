package cli

import (
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/termgrid/pkg/errors"
	"github.com/matzehuels/termgrid/pkg/graph"
	"github.com/matzehuels/termgrid/pkg/render"
)

const (
	labelID    = "id"    // label nodes with their identifier
	labelValue = "value" // label nodes with their stored label text

	defaultMaxPerLevel = 3
	defaultGlyphs      = "|,-,+,V"
)

// drawOpts holds the drawing options shared by the render and view
// commands. Flags override file values, file values override defaults.
type drawOpts struct {
	MaxPerLevel   int    `toml:"max_per_level"`
	MaxGlyphWidth int    `toml:"max_glyph_width"`
	Spacing       int    `toml:"spacing"`
	Colors        string `toml:"colors"`
	Glyphs        string `toml:"glyphs"`
	Label         string `toml:"label"`
	NoReorder     bool   `toml:"no_reorder"`
}

// defaultOpts returns the built-in defaults: three nodes per level,
// unlimited level width, one blank line between lanes, no colors,
// ASCII glyphs, ID labels.
func defaultOpts() drawOpts {
	return drawOpts{
		MaxPerLevel: defaultMaxPerLevel,
		Spacing:     1,
		Glyphs:      defaultGlyphs,
		Label:       labelID,
	}
}

// loadOptsFile overlays the TOML file at path onto opts. Only keys
// present in the file are applied.
func loadOptsFile(path string, opts *drawOpts) error {
	meta, err := toml.DecodeFile(path, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// validate checks every option and returns the first violation.
func (o drawOpts) validate() error {
	if err := errors.ValidateMaxPerLevel(o.MaxPerLevel); err != nil {
		return err
	}
	if err := errors.ValidateMaxGlyphWidth(o.MaxGlyphWidth); err != nil {
		return err
	}
	if err := errors.ValidateSpacing(o.Spacing); err != nil {
		return err
	}
	if err := errors.ValidateGlyphSet(o.Glyphs); err != nil {
		return err
	}
	if o.Label != labelID && o.Label != labelValue {
		return errors.New(errors.ErrCodeInvalidConfig, "label must be %q or %q, got %q", labelID, labelValue, o.Label)
	}
	if _, err := parsePalette(o.Colors); err != nil {
		return err
	}
	return nil
}

// renderConfig converts the options into a render configuration.
// Call validate first; invalid options are silently clamped here.
func (o drawOpts) renderConfig() render.Config[string, string] {
	var nfmt graph.NodeFormatter[string, string]
	if o.Label == labelValue {
		nfmt = graph.ValueFormatter[string, string]{}
	} else {
		nfmt = graph.IDFormatter[string, string]{}
	}

	cfg := render.NewConfig(nfmt, o.MaxPerLevel).
		WithMaxGlyphWidth(o.MaxGlyphWidth).
		WithSpacing(o.Spacing).
		WithLineGlyphs(parseGlyphs(o.Glyphs)).
		WithReorder(!o.NoReorder)

	if palette, err := parsePalette(o.Colors); err == nil && len(palette) > 0 {
		cfg = cfg.WithColors(palette...)
	}
	return cfg
}

// parsePalette parses the --colors value: empty or "off" disables
// coloring, "default" selects the built-in palette, anything else is a
// comma-separated mix of color names and numeric ANSI codes.
func parsePalette(s string) ([]render.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off":
		return nil, nil
	case "default":
		return render.DefaultPalette(), nil
	}

	var palette []render.Color
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if code, err := strconv.Atoi(field); err == nil {
			if err := errors.ValidateColorCode(code); err != nil {
				return nil, err
			}
			palette = append(palette, render.Custom(code))
			continue
		}
		if err := errors.ValidateColorName(field); err != nil {
			return nil, err
		}
		palette = append(palette, namedColor(field))
	}
	return palette, nil
}

func namedColor(name string) render.Color {
	switch strings.ToLower(name) {
	case "black":
		return render.Black
	case "red":
		return render.Red
	case "green":
		return render.Green
	case "yellow":
		return render.Yellow
	case "blue":
		return render.Blue
	case "magenta":
		return render.Magenta
	case "cyan":
		return render.Cyan
	default:
		return render.White
	}
}

// parseGlyphs converts a validated glyph spec into a glyph set.
func parseGlyphs(spec string) render.LineGlyphs {
	fields := strings.Split(spec, ",")
	if len(fields) != 4 {
		return render.ASCIIGlyphs()
	}
	return render.LineGlyphs{
		Vertical:   []rune(fields[0])[0],
		Horizontal: []rune(fields[1])[0],
		Crossing:   []rune(fields[2])[0],
		ArrowDown:  []rune(fields[3])[0],
	}
}
