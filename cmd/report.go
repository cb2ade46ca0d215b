package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/chordex/dump"
	"github.com/jsphweid/chordex/file"
	"github.com/jsphweid/chordex/registry"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long: `Prints how many intervals, labels and relationships the registry holds,
how many chord labels fit each scale, and what the last generate run wrote.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return report(cmd.OutOrStdout(), s.reg, s.cfg.OutDir)
	},
}

type registryReport struct {
	intervals       int
	chordLabels     int
	scaleLabels     int
	roots           int
	relationships   int
	byType          map[string]int
	labelsPerScale  map[string]int
	scaleLabelOrder []string
}

func analyzeRegistry(reg *registry.Registry) registryReport {
	r := registryReport{
		intervals:      reg.Intervals.Len(),
		chordLabels:    reg.ChordLabels.Len(),
		scaleLabels:    reg.ScaleLabels.Len(),
		roots:          len(reg.Roots),
		relationships:  reg.Relationships.Len(),
		byType:         make(map[string]int),
		labelsPerScale: make(map[string]int),
	}
	for _, rel := range reg.Relationships.Values() {
		r.byType[rel.Type.Name]++
	}
	for _, sl := range reg.ScaleLabels.Values() {
		r.labelsPerScale[sl.Name()] = reg.ChordLabels.Restrict(sl.Extended()).Len()
		r.scaleLabelOrder = append(r.scaleLabelOrder, sl.Name())
	}
	return r
}

type outputReport struct {
	runID    string
	files    int
	lines    []int
	numBytes int64
}

// analyzeOutput reads the manifest of the last run. It returns false when
// nothing was generated yet.
func analyzeOutput(dir string) (outputReport, bool, error) {
	m, err := dump.ReadManifest(filepath.Join(dir, file.Manifest))
	if errors.Is(err, os.ErrNotExist) {
		return outputReport{}, false, nil
	}
	if err != nil {
		return outputReport{}, false, err
	}

	report := outputReport{runID: m.RunID, files: len(m.Files)}
	for _, f := range m.Files {
		report.lines = append(report.lines, f.Lines)
		stats, err := os.Stat(filepath.Join(dir, f.Name))
		if err != nil {
			return outputReport{}, false, fmt.Errorf("could not get file stats: %w", err)
		}
		report.numBytes += stats.Size()
	}
	return report, true, nil
}

func report(out io.Writer, reg *registry.Registry, dir string) error {
	r := analyzeRegistry(reg)
	fmt.Fprintf(out, "intervals: %v\n", humanize.Comma(int64(r.intervals)))
	fmt.Fprintf(out, "chord labels: %v\n", humanize.Comma(int64(r.chordLabels)))
	fmt.Fprintf(out, "scale labels: %v\n", humanize.Comma(int64(r.scaleLabels)))
	fmt.Fprintf(out, "roots: %v\n", humanize.Comma(int64(r.roots)))
	fmt.Fprintf(out, "relationships: %v\n", humanize.Comma(int64(r.relationships)))
	for _, t := range util.GetSortedKeys(r.byType) {
		fmt.Fprintf(out, "  %v: %v\n", t, humanize.Comma(int64(r.byType[t])))
	}

	title := cases.Title(language.English)
	fmt.Fprintln(out, "chord labels per scale:")
	for _, name := range r.scaleLabelOrder {
		fmt.Fprintf(out, "  %v: %v\n", title.String(name), humanize.Comma(int64(r.labelsPerScale[name])))
	}

	o, ok, err := analyzeOutput(dir)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(out, "nothing generated in %v yet\n", dir)
		return nil
	}
	fmt.Fprintf(out, "last run: %v\n", o.runID)
	fmt.Fprintf(out, "  files: %v\n", humanize.Comma(int64(o.files)))
	fmt.Fprintf(out, "  lines: %v\n", humanize.Comma(int64(util.Sum(o.lines))))
	fmt.Fprintf(out, "  size: %v\n", humanize.Bytes(uint64(o.numBytes)))
	return nil
}
