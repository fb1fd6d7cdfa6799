package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a node identifier read from external input.
//
// The rules are intentionally conservative: identifiers end up in
// rendered output and in log lines, so anything that could corrupt a
// terminal is rejected.
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node id contains control characters")
		}
	}

	return nil
}

// ValidateLabel validates a node label before it is drawn. Labels are
// written verbatim into the character grid, so control characters and
// escape sequences would shift every cell after them.
func ValidateLabel(label string) error {
	const maxLabelLength = 500
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidInput, "label too long (max %d characters)", maxLabelLength)
	}

	for _, r := range label {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains control characters")
		}
	}

	return nil
}

// ValidateColorCode validates a numeric ANSI SGR code supplied by the
// user. Only the foreground ranges are accepted; everything else would
// restyle or erase surrounding output.
func ValidateColorCode(code int) error {
	if (code >= 30 && code <= 37) || (code >= 90 && code <= 97) {
		return nil
	}
	return New(ErrCodeInvalidColor, "color code %d outside the ANSI foreground ranges 30-37 and 90-97", code)
}

// ValidateColorName validates a named palette entry.
func ValidateColorName(name string) error {
	switch strings.ToLower(name) {
	case "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white":
		return nil
	}
	return New(ErrCodeInvalidColor, "unknown color %q", name)
}

// ValidateGlyphSet validates a user-supplied glyph string of the form
// "vertical,horizontal,crossing,arrow": exactly four printable
// single-rune fields.
func ValidateGlyphSet(spec string) error {
	fields := strings.Split(spec, ",")
	if len(fields) != 4 {
		return New(ErrCodeInvalidGlyph, "glyph set needs 4 comma-separated characters, got %d", len(fields))
	}
	for _, f := range fields {
		runes := []rune(f)
		if len(runes) != 1 {
			return New(ErrCodeInvalidGlyph, "glyph %q must be a single character", f)
		}
		if unicode.IsControl(runes[0]) {
			return New(ErrCodeInvalidGlyph, "glyph %q is a control character", f)
		}
	}
	return nil
}

// ValidateMaxPerLevel validates the per-level node budget.
func ValidateMaxPerLevel(count int) error {
	if count < 1 {
		return New(ErrCodeInvalidConfig, "max nodes per level must be at least 1, got %d", count)
	}
	return nil
}

// ValidateMaxGlyphWidth validates the per-level width budget; zero
// means unlimited.
func ValidateMaxGlyphWidth(width int) error {
	if width < 0 {
		return New(ErrCodeInvalidConfig, "max glyph width cannot be negative, got %d", width)
	}
	return nil
}

// ValidateSpacing validates the vertical lane spacing.
func ValidateSpacing(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidConfig, "vertical spacing cannot be negative, got %d", n)
	}
	return nil
}
