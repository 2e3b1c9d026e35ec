package widgets

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is the typed value of a color widget, serialized to the toolkit's
// "#rrggbb" hex form.
type Color struct {
	R, G, B uint8
}

// Hex serializes the color to its "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a "#rrggbb" hex string or an SVG 1.1 color name
// ("red", "steelblue", ...).
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return Color{}, fmt.Errorf("widgets: malformed color string %q", s)
		}
		var c Color
		if _, err := fmt.Sscanf(strings.ToLower(s), "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return Color{}, fmt.Errorf("widgets: malformed color string %q", s)
		}
		return c, nil
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{R: rgba.R, G: rgba.G, B: rgba.B}, nil
	}
	return Color{}, fmt.Errorf("widgets: unknown color %q", s)
}
