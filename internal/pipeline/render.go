package pipeline

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/shotframe/shotframe/internal/compose"
	"github.com/shotframe/shotframe/internal/digest"
	"github.com/shotframe/shotframe/internal/editor"
	"github.com/shotframe/shotframe/internal/manifest"
	"github.com/shotframe/shotframe/internal/style"
	"github.com/shotframe/shotframe/internal/suggest"
)

// renderResult holds the outcome for a single source screenshot.
type renderResult struct {
	key    string
	render manifest.Render
	err    error
}

// Export is one encoded render, not yet written to disk. Artifact.Path
// stays empty until the caller decides where it goes.
type Export struct {
	Render manifest.Render
	Data   []byte
	Ext    string
}

// ExportSource decodes one screenshot, frames it with the configured
// style, and encodes the result. The suggestion service, when
// configured, is consulted per shot; its failures downgrade to a log
// line because a missing proposal should never sink a render.
func (p *Pipeline) ExportSource(ctx context.Context, src Source) (*Export, error) {
	f, err := os.Open(src.AbsPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.RelPath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src.RelPath, err)
	}

	sess := editor.New()
	sess.SetImage(img)
	sess.Apply(p.cfg.Style)

	if p.cfg.Suggest != nil {
		pal := sess.Palette()
		natural := sess.NaturalSize()
		p.logger.Debug("requesting style suggestion", "source", src.Key)
		prop, err := p.cfg.Suggest.Propose(ctx, suggest.Request{
			Palette:  pal.Colors[:],
			Dominant: pal.Dominant,
			Width:    int(natural.W),
			Height:   int(natural.H),
		})
		if err != nil {
			p.logger.Warn("style suggestion unavailable", "source", src.Key, "err", err)
		} else if err := sess.ApplySuggestion(prop.Background, prop.Shadow); err != nil {
			p.logger.Warn("style suggestion rejected", "source", src.Key, "err", err)
		}
	}

	st := sess.Settings()
	frame, l, err := compose.Render(img, sess.Palette(), st)
	if err != nil {
		return nil, fmt.Errorf("compose %s: %w", src.RelPath, err)
	}

	transparent := st.BackgroundKind == style.BackgroundTransparent
	enc, err := p.registry.Resolve(p.cfg.Format, transparent)
	if err != nil {
		return nil, err
	}
	if req := p.registry.Get(p.cfg.Format); transparent && req != nil && !req.SupportsAlpha() {
		p.logger.Debug("format swapped to keep alpha", "source", src.Key, "format", enc.Format())
	}

	data, err := enc.Encode(frame, p.cfg.Quality)
	if err != nil {
		return nil, fmt.Errorf("encode %s as %s: %w", src.RelPath, enc.Format(), err)
	}

	b := img.Bounds()
	pal := sess.Palette()
	eb := frame.Bounds()

	return &Export{
		Render: manifest.Render{
			Source: manifest.SourceInfo{
				Width:  b.Dx(),
				Height: b.Dy(),
				Format: src.Format,
				Size:   src.Size,
			},
			Palette:     pal.Colors[:],
			Dominant:    pal.Dominant,
			MeshSeed:    st.MeshSeed,
			Fingerprint: digest.StyleFingerprint(st),
			CardW:       l.Card.W,
			CardH:       l.Card.H,
			Artifact: manifest.Artifact{
				Format: enc.Format(),
				Width:  eb.Dx(),
				Height: eb.Dy(),
				Size:   int64(len(data)),
				Digest: digest.Artifact(data, 8),
			},
		},
		Data: data,
		Ext:  enc.Extension(),
	}, nil
}

// WriteExport writes an encoded export under the output directory with
// a content-addressed name: key.WxH.digest.ext. Re-rendering the same
// input with the same style lands on the same path. The relative path
// is filled into the export's manifest entry and returned.
func (p *Pipeline) WriteExport(e *Export, key string) (string, error) {
	keyDir := filepath.Dir(key)
	if keyDir != "." {
		if err := os.MkdirAll(filepath.Join(p.cfg.OutputDir, keyDir), 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", keyDir, err)
		}
	}

	a := e.Render.Artifact
	fileName := fmt.Sprintf("%s.%dx%d.%s.%s", filepath.Base(key), a.Width, a.Height, a.Digest, e.Ext)
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

	if err := os.WriteFile(filepath.Join(p.cfg.OutputDir, relPath), e.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", relPath, err)
	}

	e.Render.Artifact.Path = relPath
	return relPath, nil
}

func (p *Pipeline) renderOne(ctx context.Context, src Source) renderResult {
	result := renderResult{key: src.Key}

	e, err := p.ExportSource(ctx, src)
	if err != nil {
		result.err = err
		return result
	}
	if _, err := p.WriteExport(e, src.Key); err != nil {
		result.err = err
		return result
	}

	result.render = e.Render
	return result
}
