//go:build ignore

// gen_fixtures creates synthetic screenshots for the E2E smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(filepath.Join(dir, "shots"), 0o755)

	// App window with chrome bar and mid-tone panels: yields a real palette.
	writePNG(filepath.Join(dir, "editor.png"), window(400, 250))

	// Near-black terminal: most pixels fall under the brightness floor,
	// so the palette pads from the fallbacks.
	writePNG(filepath.Join(dir, "terminal.png"), terminal(360, 220))

	// Near-white canvas: the opposite extreme.
	writePNG(filepath.Join(dir, "whiteboard.png"), solid(320, 200, color.NRGBA{246, 246, 248, 255}))

	// Nested key plus a JPEG source.
	writePNG(filepath.Join(dir, "shots", "dialog.png"), window(240, 160))
	writeJPEG(filepath.Join(dir, "banner.jpg"), window(400, 225))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 5 fixtures in %s\n", dir)
}

// window draws a light chrome bar over three colored content panels.
func window(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	chrome := color.NRGBA{225, 226, 230, 255}
	panels := []color.NRGBA{
		{96, 125, 180, 255},
		{170, 120, 96, 255},
		{110, 160, 120, 255},
	}
	bar := h / 8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := chrome
			if y >= bar {
				c = panels[x*len(panels)/w]
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// terminal draws dim green rows on near-black.
func terminal(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{18, 20, 22, 255}
			if y%10 >= 3 && y%10 <= 5 && x > 8 && x < w-8 {
				c = color.NRGBA{40, 52, 40, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
		panic(err)
	}
}
