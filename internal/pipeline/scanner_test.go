package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanImagesFindsNested(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.png"))
	touch(t, filepath.Join(dir, "sub", "b.JPG"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, ".cache", "c.png"))
	touch(t, filepath.Join(dir, "._junk.png"))

	sources, err := ScanImages(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2: %+v", len(sources), sources)
	}

	byKey := map[string]Source{}
	for _, s := range sources {
		byKey[s.Key] = s
	}
	if _, ok := byKey["a"]; !ok {
		t.Error("a.png not found")
	}
	b, ok := byKey["sub/b"]
	if !ok {
		t.Fatal("sub/b.JPG not found")
	}
	if b.Format != "jpeg" {
		t.Errorf("format: got %q, want jpeg", b.Format)
	}
	if b.RelPath != "sub/b.JPG" {
		t.Errorf("relpath: got %q", b.RelPath)
	}
	if b.Size != 1 {
		t.Errorf("size: got %d", b.Size)
	}
}

func TestScanImagesEmptyDir(t *testing.T) {
	sources, err := ScanImages(t.TempDir())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sources) != 0 {
		t.Errorf("got %d sources from empty dir", len(sources))
	}
}

func TestSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "login.png")
	touch(t, path)

	src, err := SourceFromFile(path)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if src.Key != "login" {
		t.Errorf("key: got %q", src.Key)
	}
	if src.Format != "png" {
		t.Errorf("format: got %q", src.Format)
	}

	if _, err := SourceFromFile(dir); err == nil {
		t.Error("directory did not error")
	}
	txt := filepath.Join(dir, "readme.md")
	touch(t, txt)
	if _, err := SourceFromFile(txt); err == nil {
		t.Error("unsupported extension did not error")
	}
	if _, err := SourceFromFile(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("missing file did not error")
	}
}

func TestFormatFromExt(t *testing.T) {
	cases := map[string]string{
		".jpg": "jpeg", ".jpeg": "jpeg",
		".tif": "tiff", ".tiff": "tiff",
		".png": "png", ".webp": "webp",
	}
	for ext, want := range cases {
		if got := formatFromExt(ext); got != want {
			t.Errorf("%s: got %q, want %q", ext, got, want)
		}
	}
}
