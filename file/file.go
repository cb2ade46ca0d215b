// Package file names the dump files written under the output directory.
package file

import (
	"fmt"
	"strings"
)

const (
	NoteIntervals        = "note_intervals.txt"
	Scales               = "scales.txt"
	ChromaticChordLabels = "chord_labels_chromatic.txt"
	Relationships        = "relationships.txt"
	Manifest             = "manifest.toml"
	chromatic            = "chromatic"
	chordLabelsPrefix    = "chord_labels_"
	chordsPrefix         = "chords_"
	textExtension        = ".txt"
	midiExtension        = ".mid"
)

// Slug makes a scale or chord name safe to use in a filename.
func Slug(name string) string {
	return strings.NewReplacer(" ", "_", "/", "-").Replace(name)
}

func ChordLabels(scale string) string {
	return chordLabelsPrefix + Slug(scale) + textExtension
}

// Chords names the dump of every chord on root. An empty scale means
// chromatic.
func Chords(root, scale string) string {
	if scale == "" {
		scale = chromatic
	}
	return fmt.Sprintf("%v%v_%v%v", chordsPrefix, root, Slug(scale), textExtension)
}

func ChromaticChords(root string) string {
	return Chords(root, "")
}

// Midi names a rendered chord or scale, e.g. "C#_m7.mid".
func Midi(root, name string) string {
	if name == "" {
		return Slug(root) + midiExtension
	}
	return Slug(root) + "_" + Slug(name) + midiExtension
}
