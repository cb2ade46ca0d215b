// Package dump writes the registry as text files, one line per value, plus a
// TOML manifest describing the run.
package dump

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/file"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/pretty"
	"github.com/jsphweid/chordex/registry"
	"github.com/jsphweid/chordex/scale"
	"github.com/pelletier/go-toml/v2"
)

type Writer struct {
	dir    string
	reg    *registry.Registry
	format Format
	pretty bool
	log    *slog.Logger

	files   []model.ManifestFile
	skipped int
}

func New(dir string, reg *registry.Registry, prettify bool, log *slog.Logger) *Writer {
	return &Writer{
		dir:    dir,
		reg:    reg,
		format: Format{Sym: pretty.Formatter(prettify)},
		pretty: prettify,
		log:    log,
	}
}

// All writes every dump into the output directory, then the manifest. The
// directory must exist.
func (w *Writer) All() (model.Manifest, error) {
	if err := w.NoteIntervals(); err != nil {
		return model.Manifest{}, err
	}
	if err := w.Scales(); err != nil {
		return model.Manifest{}, err
	}

	if err := w.ChordLabels(w.reg.ChordLabels, file.ChromaticChordLabels); err != nil {
		return model.Manifest{}, err
	}
	for _, root := range w.reg.Roots {
		if err := w.Chords(w.reg.ChordLabels, root, file.ChromaticChords(root.Name())); err != nil {
			return model.Manifest{}, err
		}
	}

	for _, sl := range w.reg.ScaleLabels.Values() {
		restricted := w.reg.ChordLabels.Restrict(sl.Extended())
		if err := w.ChordLabels(restricted, file.ChordLabels(sl.Name())); err != nil {
			return model.Manifest{}, err
		}
		for _, root := range w.reg.Roots {
			if err := w.Chords(restricted, root, file.Chords(root.Name(), sl.Name())); err != nil {
				return model.Manifest{}, err
			}
		}
	}

	if err := w.Relationships(); err != nil {
		return model.Manifest{}, err
	}
	return w.Manifest()
}

// NoteIntervals writes every root plus every canonical interval.
func (w *Writer) NoteIntervals() error {
	var lines []string
	for _, n := range w.reg.Roots {
		for _, i := range w.reg.Intervals.Values() {
			res, err := n.Add(i)
			if err != nil {
				w.skip(err)
				continue
			}
			lines = append(lines, w.format.NoteInterval(n, i, res))
		}
	}
	return w.write(file.NoteIntervals, lines)
}

func (w *Writer) Scales() error {
	var lines []string
	for _, n := range w.reg.Roots {
		for _, sl := range w.reg.ScaleLabels.Values() {
			s, err := scale.New(n, sl)
			if err != nil {
				w.skip(err)
				continue
			}
			lines = append(lines, w.format.Scale(s))
		}
	}
	return w.write(file.Scales, lines)
}

// ChordLabels writes the labels of idx ordered by intervals.
func (w *Writer) ChordLabels(idx *chordlabel.Index, name string) error {
	var lines []string
	for _, c := range idx.Sorted() {
		lines = append(lines, w.format.ChordLabel(c))
	}
	return w.write(name, lines)
}

// Chords writes every label of idx placed on root, ordered by intervals.
func (w *Writer) Chords(idx *chordlabel.Index, root note.Note, name string) error {
	var lines []string
	for _, cl := range idx.Sorted() {
		c, err := chord.New(root, cl)
		if err != nil {
			w.skip(err)
			continue
		}
		lines = append(lines, w.format.Chord(c))
	}
	return w.write(name, lines)
}

func (w *Writer) Relationships() error {
	values := w.reg.Relationships.Values()
	lines := make([]string, len(values))
	for i, r := range values {
		lines[i] = w.format.Relationship(r)
	}
	return w.write(file.Relationships, lines)
}

// Manifest writes manifest.toml for the files written so far.
func (w *Writer) Manifest() (model.Manifest, error) {
	m := model.Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Pretty:    w.pretty,
		Counts: model.Counts{
			Intervals:     w.reg.Intervals.Len(),
			ChordLabels:   w.reg.ChordLabels.Len(),
			ScaleLabels:   w.reg.ScaleLabels.Len(),
			Roots:         len(w.reg.Roots),
			Relationships: w.reg.Relationships.Len(),
			Skipped:       w.skipped,
		},
		Files: w.Files(),
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return model.Manifest{}, fmt.Errorf("marshaling manifest to TOML: %w", err)
	}
	path := filepath.Join(w.dir, file.Manifest)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.Manifest{}, fmt.Errorf("writing %v: %w", path, err)
	}
	w.log.Info("Wrote manifest", "run_id", m.RunID, "files", humanize.Comma(int64(len(m.Files))), "skipped", humanize.Comma(int64(w.skipped)))
	return m, nil
}

func (w *Writer) Files() []model.ManifestFile {
	res := make([]model.ManifestFile, len(w.files))
	copy(res, w.files)
	return res
}

func (w *Writer) Skipped() int {
	return w.skipped
}

func (w *Writer) skip(err error) {
	w.log.Debug("Skipping", "reason", err)
	w.skipped++
}

func (w *Writer) write(name string, lines []string) error {
	path := filepath.Join(w.dir, name)
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing %v: %w", path, err)
	}
	w.files = append(w.files, model.ManifestFile{Name: name, Lines: len(lines)})
	w.log.Debug("Wrote", "file", name, "lines", humanize.Comma(int64(len(lines))))
	return nil
}

func ReadManifest(path string) (model.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Manifest{}, fmt.Errorf("reading manifest: %w", err)
	}
	var m model.Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return model.Manifest{}, fmt.Errorf("parsing manifest %v: %w", path, err)
	}
	return m, nil
}
