package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/shotframe/shotframe/internal/encoder"
	"github.com/shotframe/shotframe/internal/manifest"
	"github.com/shotframe/shotframe/internal/style"
	"github.com/shotframe/shotframe/internal/suggest"
)

// Config holds all parameters for a batch render run.
type Config struct {
	InputDir  string
	OutputDir string
	Preset    string // preset name recorded in the manifest
	Style     style.Settings
	Format    string // output format; empty means png
	Quality   int
	Workers   int
	Suggest   *suggest.Client // nil disables the per-shot style consult
	Logger    *log.Logger
}

// Pipeline orchestrates batch screenshot rendering.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
	logger   *log.Logger
}

// New creates a configured pipeline. A nil logger falls back to the
// package default.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
		logger:   logger,
	}
}

// Run renders every screenshot under the input directory and returns
// the manifest. Individual failures are collected, not fatal; Run
// errors only when nothing could be rendered at all.
func (p *Pipeline) Run(ctx context.Context) (*manifest.Manifest, error) {
	p.logger.Debug(p.registry.String())

	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	p.logger.Info("scanned input", "dir", p.cfg.InputDir, "images", len(sources))

	results := make([]renderResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			p.logger.Debug("rendering", "source", s.Key)
			results[idx] = p.renderOne(ctx, s)
		}(i, src)
	}
	wg.Wait()

	m := manifest.New(p.cfg.Preset)
	m.OutDir = p.cfg.OutputDir
	m.RunInfo = &manifest.RunInfo{
		Workers: p.cfg.Workers,
		Format:  p.cfg.Format,
		Quality: p.cfg.Quality,
	}

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			p.logger.Warn("render failed", "source", r.key, "err", r.err)
			m.Failures = append(m.Failures, manifest.Failure{Source: r.key, Error: r.err.Error()})
			continue
		}
		m.Renders[r.key] = r.render
	}

	if failed == len(sources) {
		return nil, fmt.Errorf("all %d images failed to render", failed)
	}
	if failed > 0 {
		p.logger.Warn("partial batch", "failed", failed, "total", len(sources))
	}

	m.ComputeStats()
	return m, nil
}
