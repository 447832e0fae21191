package encoder

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
)

// Atomic counter for unique temp file names across worker goroutines.
var tempCounter atomic.Int64

// encodeViaTool writes img to a temp PNG, runs an external encoder over
// it, and reads the result back. cwebp and avifenc both work on files,
// not pipes, so this is the shared plumbing for every external format.
func encodeViaTool(img image.Image, dstExt string, args func(src, dst string) *exec.Cmd) ([]byte, error) {
	id := tempCounter.Add(1)

	srcFile, err := os.CreateTemp("", fmt.Sprintf("shotframe_src_%d_*.png", id))
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	srcPath := srcFile.Name()
	defer os.Remove(srcPath)

	dstFile, err := os.CreateTemp("", fmt.Sprintf("shotframe_dst_%d_*.%s", id, dstExt))
	if err != nil {
		srcFile.Close()
		return nil, fmt.Errorf("create temp: %w", err)
	}
	dstPath := dstFile.Name()
	dstFile.Close()
	defer os.Remove(dstPath)

	if err := png.Encode(srcFile, img); err != nil {
		srcFile.Close()
		return nil, fmt.Errorf("encode temp png: %w", err)
	}
	srcFile.Close()

	cmd := args(srcPath, dstPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", cmd.Path, err, string(out))
	}

	return os.ReadFile(dstPath)
}

// WebPEncoder encodes exports to WebP by shelling out to cwebp.
// Avoids CGO while still producing optimized WebP.
// Install: brew install webp / apt install webp
type WebPEncoder struct {
	once      sync.Once
	available bool
	cwebpPath string
}

func (e *WebPEncoder) Format() string      { return "webp" }
func (e *WebPEncoder) Extension() string   { return "webp" }
func (e *WebPEncoder) SupportsAlpha() bool { return true }

func (e *WebPEncoder) Available() bool {
	e.once.Do(func() {
		path, err := exec.LookPath("cwebp")
		if err == nil {
			e.available = true
			e.cwebpPath = path
		}
	})
	return e.available
}

func (e *WebPEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("cwebp not found in PATH; install with: brew install webp")
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	return encodeViaTool(img, "webp", func(src, dst string) *exec.Cmd {
		return exec.Command(e.cwebpPath,
			"-q", fmt.Sprintf("%d", quality),
			"-m", "6", // compression method (0=fast, 6=best)
			"-mt",     // multi-threaded
			"-quiet",
			src,
			"-o", dst,
		)
	})
}

// AVIFEncoder encodes exports to AVIF by shelling out to avifenc.
// Install: brew install libavif / apt install libavif-bin
type AVIFEncoder struct {
	once        sync.Once
	available   bool
	avifencPath string
}

func (e *AVIFEncoder) Format() string      { return "avif" }
func (e *AVIFEncoder) Extension() string   { return "avif" }
func (e *AVIFEncoder) SupportsAlpha() bool { return true }

func (e *AVIFEncoder) Available() bool {
	e.once.Do(func() {
		path, err := exec.LookPath("avifenc")
		if err == nil {
			e.available = true
			e.avifencPath = path
		}
	})
	return e.available
}

func (e *AVIFEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("avifenc not found in PATH; install with: brew install libavif")
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	// avifenc quality runs the other way: 0-63, lower is better.
	avifQ := 63 - (quality * 63 / 100)
	speed := 6 // 0=slowest, 10=fastest

	return encodeViaTool(img, "avif", func(src, dst string) *exec.Cmd {
		return exec.Command(e.avifencPath,
			"--min", fmt.Sprintf("%d", avifQ),
			"--max", fmt.Sprintf("%d", avifQ),
			"--speed", fmt.Sprintf("%d", speed),
			"-j", "all",
			src,
			dst,
		)
	})
}
