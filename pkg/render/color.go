package render

// Color is an ANSI SGR foreground color code.
type Color int

const (
	Black   Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37
)

// Custom wraps an arbitrary SGR code. The code is not validated;
// callers are responsible for picking one their terminal understands.
func Custom(code int) Color { return Color(code) }

// DefaultPalette returns the palette used by Config.DefaultColors.
// Black and white are left out since one of them usually matches the
// terminal background.
func DefaultPalette() []Color {
	return []Color{Red, Green, Yellow, Blue, Magenta, Cyan}
}
