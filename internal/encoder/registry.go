package encoder

import (
	"fmt"
	"strings"
)

// Registry probes encoders once and resolves the requested output
// format, swapping in PNG when a transparent export would otherwise
// lose its alpha channel.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		&AVIFEncoder{},
		&WebPEncoder{},
		&JPEGEncoder{},
		&PNGEncoder{},
	}

	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}

	return r
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[normalize(format)]
}

// Available returns all available format names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range []string{"avif", "webp", "png", "jpeg"} {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// Resolve picks the encoder for a requested format. Empty means PNG.
// A transparent export routed at a format without alpha comes back as
// the PNG encoder instead, so transparency always survives; callers can
// compare Format() against the request to log the swap.
func (r *Registry) Resolve(format string, transparent bool) (Encoder, error) {
	f := normalize(format)
	if f == "" {
		f = "png"
	}

	enc, ok := r.encoders[f]
	if !ok {
		return nil, fmt.Errorf("format %q not available (have: %s)", format, strings.Join(r.Available(), ", "))
	}

	if transparent && !enc.SupportsAlpha() {
		return r.encoders["png"], nil
	}
	return enc, nil
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}

func normalize(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "jpg":
		return "jpeg"
	}
	return f
}
