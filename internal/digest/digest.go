// Package digest provides the short hashes used in export filenames and
// change detection: a content digest over encoded artifact bytes and a
// fingerprint over a style value.
package digest

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/shotframe/shotframe/internal/style"
)

// Artifact computes the xxHash64 of encoded artifact bytes as a hex
// string truncated to hexLen. Filenames use 8 hex chars (32 bits), which
// is collision-safe for per-directory artifact counts.
func Artifact(data []byte, hexLen int) string {
	return truncate(xxhash.Sum64(data), hexLen)
}

// ArtifactReader computes the artifact digest from a reader, streaming.
func ArtifactReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return truncate(h.Sum64(), hexLen), nil
}

// StyleFingerprint hashes a canonical encoding of a style value. Two
// equal settings always fingerprint identically, so the fingerprint can
// name outputs and skip re-renders when nothing changed.
func StyleFingerprint(s style.Settings) string {
	h := xxhash.New()
	fmt.Fprintf(h, "p=%g i=%g r=%g sh=%g sa=%g bk=%s bg=%s ar=%s sc=%g px=%g py=%g seed=%d",
		s.Padding, s.Inset, s.CornerRadius, s.Shadow, s.ShadowAngle,
		s.BackgroundKind, s.Background, s.AspectRatio.String(),
		s.Scale, s.PanX, s.PanY, s.MeshSeed)
	return truncate(h.Sum64(), 12)
}

func truncate(v uint64, hexLen int) string {
	b := make([]byte, 8)
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
	full := hex.EncodeToString(b)
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
