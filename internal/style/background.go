package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Background is a parsed background spec: a solid color or a linear
// gradient. A single stop means solid.
type Background struct {
	Angle float64 // gradient direction in degrees
	Stops []colorful.Color
}

// Solid reports whether the background is a single flat color.
func (b Background) Solid() bool {
	return len(b.Stops) == 1
}

// ParseBackground parses a background spec string. Two forms are accepted:
//
//	#rrggbb
//	linear-gradient(135deg, #aabbcc, #ddeeff[, #112233...])
func ParseBackground(s string) (Background, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Background{}, fmt.Errorf("empty background spec")
	}
	if strings.HasPrefix(t, "#") {
		c, err := colorful.Hex(t)
		if err != nil {
			return Background{}, fmt.Errorf("background color %q: %w", s, err)
		}
		return Background{Stops: []colorful.Color{c}}, nil
	}

	inner, ok := strings.CutPrefix(t, "linear-gradient(")
	if !ok {
		return Background{}, fmt.Errorf("background %q: want \"#rrggbb\" or \"linear-gradient(...)\"", s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return Background{}, fmt.Errorf("background %q: missing closing paren", s)
	}

	parts := strings.Split(inner, ",")
	if len(parts) < 3 {
		return Background{}, fmt.Errorf("background %q: want an angle and at least two color stops", s)
	}

	angleStr := strings.TrimSpace(parts[0])
	angleStr = strings.TrimSuffix(angleStr, "deg")
	angle, err := strconv.ParseFloat(angleStr, 64)
	if err != nil {
		return Background{}, fmt.Errorf("background %q: angle: %w", s, err)
	}

	stops := make([]colorful.Color, 0, len(parts)-1)
	for _, p := range parts[1:] {
		c, err := colorful.Hex(strings.TrimSpace(p))
		if err != nil {
			return Background{}, fmt.Errorf("background %q: stop %q: %w", s, strings.TrimSpace(p), err)
		}
		stops = append(stops, c)
	}
	return Background{Angle: wrapAngle(angle), Stops: stops}, nil
}
