package model

import "time"

// Manifest describes one run of the generator. It is written next to the
// dumps as manifest.toml.
type Manifest struct {
	RunID     string         `toml:"run_id"`
	CreatedAt time.Time      `toml:"created_at"`
	Pretty    bool           `toml:"pretty"`
	Counts    Counts         `toml:"counts"`
	Files     []ManifestFile `toml:"files"`
}

type ManifestFile struct {
	Name  string `toml:"name"`
	Lines int    `toml:"lines"`
}

type Counts struct {
	Intervals     int `toml:"intervals"`
	ChordLabels   int `toml:"chord_labels"`
	ScaleLabels   int `toml:"scale_labels"`
	Roots         int `toml:"roots"`
	Relationships int `toml:"relationships"`
	Skipped       int `toml:"skipped"`
}
