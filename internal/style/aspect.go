package style

import (
	"fmt"
	"strconv"
	"strings"
)

// AspectRatio constrains the export frame. The zero value means auto:
// the frame hugs the card plus padding with no ratio forced.
type AspectRatio struct {
	W, H int
}

// Auto reports whether the ratio is unconstrained.
func (a AspectRatio) Auto() bool {
	return a.W <= 0 || a.H <= 0
}

// Value returns width/height. Only meaningful when !Auto().
func (a AspectRatio) Value() float64 {
	return float64(a.W) / float64(a.H)
}

func (a AspectRatio) String() string {
	if a.Auto() {
		return "auto"
	}
	return fmt.Sprintf("%d/%d", a.W, a.H)
}

// ParseAspectRatio parses "auto" or "W/H" with positive integer parts.
// Anything else is rejected here so a malformed ratio can never reach the
// layout solver as NaN.
func ParseAspectRatio(s string) (AspectRatio, error) {
	t := strings.TrimSpace(strings.ToLower(s))
	if t == "" || t == "auto" {
		return AspectRatio{}, nil
	}
	w, h, ok := strings.Cut(t, "/")
	if !ok {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q: want \"auto\" or \"W/H\"", s)
	}
	wn, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q: width: %w", s, err)
	}
	hn, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q: height: %w", s, err)
	}
	if wn <= 0 || hn <= 0 {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q: parts must be positive", s)
	}
	return AspectRatio{W: wn, H: hn}, nil
}
