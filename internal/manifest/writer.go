package manifest

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty manifest with defaults.
func New(presetName string) *Manifest {
	return &Manifest{
		Version:     SchemaVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Preset:      presetName,
		OutDir:      "./",
		Renders:     make(map[string]Render),
	}
}

// ComputeStats recalculates aggregate statistics from renders.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalRenders = len(m.Renders)
	s.TotalFailures = len(m.Failures)
	for _, r := range m.Renders {
		s.TotalInputBytes += r.Source.Size
		s.TotalOutputBytes += r.Artifact.Size
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
