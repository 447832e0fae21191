package layout

import "math"

// fitFill is the fraction of the viewport the export frame may occupy on
// screen, leaving breathing room around the preview.
const fitFill = 0.75

// FitScale returns the uniform preview scale that fits the export frame
// into a container, filling at most fitFill of it along the limiting axis.
// Degenerate container or frame sizes return a safe small scale instead of
// Inf or NaN.
func FitScale(container Size, l Layout) float64 {
	if container.Zero() || l.Export.Zero() {
		return 0.1
	}
	return math.Min(
		container.W*fitFill/l.Export.W,
		container.H*fitFill/l.Export.H,
	)
}
