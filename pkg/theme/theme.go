// Package theme models the day/night colour scheme as a pair of named
// colour variables.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Name identifies a theme.
type Name string

const (
	Day   Name = "day"
	Night Name = "night"
	// System defers to the terminal's reported background.
	System Name = "system"
)

// Variable names exposed to the styling layer.
const (
	VarDark  = "color-dark"
	VarLight = "color-light"
)

// RGB is an 8-bit colour triple, written as "r, g, b".
type RGB struct {
	R, G, B uint8
}

var (
	ink   = RGB{10, 10, 20}
	paper = RGB{255, 255, 255}
)

func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Colorful converts to a go-colorful colour for blending.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ParseRGB parses "r, g, b".
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("theme: %q is not an r, g, b triple", s)
	}
	var out [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("theme: %q: %w", s, err)
		}
		out[i] = uint8(v)
	}
	return RGB{out[0], out[1], out[2]}, nil
}

// Palette is the applied pair of colour variables. Dark is the foreground
// (text) colour and Light the background colour.
type Palette struct {
	Name  Name
	Dark  RGB
	Light RGB
}

// Vars returns the palette as named variables.
func (p Palette) Vars() map[string]string {
	return map[string]string{
		VarDark:  p.Dark.String(),
		VarLight: p.Light.String(),
	}
}

// Muted blends the foreground toward the background; alpha is the share of
// foreground kept, mirroring rgba(var(--color-dark), alpha).
func (p Palette) Muted(alpha float64) string {
	return p.Light.Colorful().BlendRgb(p.Dark.Colorful(), alpha).Clamped().Hex()
}

// Parse maps a submitted theme value to a theme. Anything but night is day.
func Parse(v string) Name {
	if Name(strings.ToLower(strings.TrimSpace(v))) == Night {
		return Night
	}
	return Day
}

// For returns the palette of a theme. The two variables swap between day
// and night.
func For(n Name) Palette {
	if n == Night {
		return Palette{Name: Night, Dark: paper, Light: ink}
	}
	return Palette{Name: Day, Dark: ink, Light: paper}
}

// Detector reports whether the environment prefers a dark scheme.
type Detector func() bool

// TerminalDetector asks the terminal for its background colour.
func TerminalDetector() bool {
	return termenv.HasDarkBackground()
}

// Preferred returns night when the detector reports a dark preference.
func Preferred(dark Detector) Name {
	if dark != nil && dark() {
		return Night
	}
	return Day
}

// Resolve turns a configured value (day, night or system) into a concrete
// theme.
func Resolve(configured string, dark Detector) Name {
	switch Name(strings.ToLower(strings.TrimSpace(configured))) {
	case Day:
		return Day
	case Night:
		return Night
	default:
		return Preferred(dark)
	}
}
