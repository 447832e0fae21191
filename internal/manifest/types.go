package manifest

// Manifest is the top-level report of a shotframe batch render.
type Manifest struct {
	Version     int               `json:"version"`
	GeneratedAt string            `json:"generated_at"`
	Preset      string            `json:"preset"`
	OutDir      string            `json:"out_dir"`
	RunInfo     *RunInfo          `json:"run_info,omitempty"`
	Renders     map[string]Render `json:"renders"`
	Failures    []Failure         `json:"failures,omitempty"`
	Stats       Stats             `json:"stats"`
}

// RunInfo captures run-time parameters for diagnostics.
type RunInfo struct {
	Workers int    `json:"workers"`
	Format  string `json:"format"`
	Quality int    `json:"quality"`
}

// Render describes one source screenshot and the export produced from it.
type Render struct {
	Source      SourceInfo `json:"source"`
	Palette     []string   `json:"palette"`  // 5 muted hex colors
	Dominant    string     `json:"dominant"` // most frequent of the five
	MeshSeed    int64      `json:"mesh_seed"`
	Fingerprint string     `json:"fingerprint"` // style fingerprint used for naming
	CardW       float64    `json:"card_w"`      // layout units, unrounded
	CardH       float64    `json:"card_h"`
	Artifact    Artifact   `json:"artifact"`
}

// SourceInfo holds metadata about the input screenshot.
type SourceInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// Artifact is the encoded export written to disk.
type Artifact struct {
	Format string `json:"format"` // "png", "jpeg", "webp", "avif"
	Width  int    `json:"width"`  // pixels, export density applied
	Height int    `json:"height"`
	Size   int64  `json:"size"`   // bytes on disk
	Digest string `json:"digest"` // first 8 hex chars of xxhash64
	Path   string `json:"path"`   // relative to out_dir
}

// Failure records a source that could not be rendered. Batch runs keep
// going past individual failures.
type Failure struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalRenders     int   `json:"total_renders"`
	TotalFailures    int   `json:"total_failures,omitempty"`
}

// SchemaVersion is the current manifest schema version.
const SchemaVersion = 1
