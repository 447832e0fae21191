package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source represents a discovered screenshot file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the input directory.
	RelPath string
	// Key is the render key (relpath without extension, forward slashes).
	Key string
	// Format is the source format (png, jpeg, webp, gif, bmp, tiff).
	Format string
	// Size is the file size in bytes.
	Size int64
}

// imageExtensions lists the extensions the decoder set can read.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// ScanImages walks the input directory and returns all screenshot
// sources. Hidden directories and dotfiles are skipped; macOS screenshot
// folders tend to carry AppleDouble "._*.png" junk that would only fail
// to decode later.
func ScanImages(inputDir string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		hidden := strings.HasPrefix(d.Name(), ".") && d.Name() != "." && d.Name() != ".."
		if d.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		key := filepath.ToSlash(strings.TrimSuffix(relPath, filepath.Ext(relPath)))

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Key:     key,
			Format:  formatFromExt(ext),
			Size:    info.Size(),
		})

		return nil
	})

	return sources, err
}

// SourceFromFile builds a Source for a single screenshot outside a
// directory scan, keyed by its base name.
func SourceFromFile(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Source{}, err
	}
	if info.IsDir() {
		return Source{}, fmt.Errorf("%s is a directory", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !imageExtensions[ext] {
		return Source{}, fmt.Errorf("unsupported image type %q", ext)
	}

	name := filepath.Base(path)
	return Source{
		AbsPath: path,
		RelPath: name,
		Key:     strings.TrimSuffix(name, filepath.Ext(name)),
		Format:  formatFromExt(ext),
		Size:    info.Size(),
	}, nil
}

func formatFromExt(ext string) string {
	switch f := strings.TrimPrefix(ext, "."); f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	default:
		return f
	}
}
