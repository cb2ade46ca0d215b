package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/pretty"
	"github.com/jsphweid/chordex/registry"
	"github.com/jsphweid/chordex/sample"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
)

func init() {
	identifyCmd.Flags().Int("max", 0, "max number of files to read, 0 for all")
	identifyCmd.Flags().Uint64("from", 0, "skip notes before this tick")
	identifyCmd.Flags().Int("limit", 0, "only read this many note on/off events per track, 0 for all")
	identifyCmd.Flags().Int("top", 3, "names to print per chord")
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <file.mid|dir>",
	Short: "Names the chords of MIDI files",
	Long: `Reads MIDI files, collects every set of keys sounding together and names
it with the matching chord labels, root position readings first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		opts := identifyOptions{pretty: s.cfg.Pretty}
		opts.max, _ = cmd.Flags().GetInt("max")
		opts.from, _ = cmd.Flags().GetUint64("from")
		opts.limit, _ = cmd.Flags().GetInt("limit")
		opts.top, _ = cmd.Flags().GetInt("top")
		return identify(cmd.OutOrStdout(), s.reg, args[0], opts, s.log)
	},
}

type identifyOptions struct {
	max    int
	from   uint64
	limit  int
	top    int
	pretty bool
}

func identify(out io.Writer, reg *registry.Registry, path string, opts identifyOptions, log *slog.Logger) error {
	paths, err := util.GatherAllMidiPaths(path, opts.max)
	if err != nil {
		return err
	}
	sym := pretty.Formatter(opts.pretty)

	for _, p := range paths {
		mf, err := midi.ReadMidiFile(p)
		if err != nil {
			// NOTE: one broken file should not stop the rest
			log.Warn("Could not read midi file", "path", p, "error", err)
			continue
		}
		if opts.from > 0 || opts.limit > 0 {
			mf = sample.Excerpt(mf, opts.from, opts.limit)
		}

		voicings, err := chord.GetChords(mf)
		if err != nil {
			log.Warn("Could not read every chord", "path", p, "error", err)
		}

		fmt.Fprintln(out, p)
		for _, v := range voicings {
			matches := chord.Identify(reg.ChordLabels, v.Notes)
			var names []string
			for i, m := range matches {
				if opts.top > 0 && i >= opts.top {
					break
				}
				name := sym(m.Name())
				if m.Inversion {
					name += "/" + sym(bassName(v.Notes))
				}
				names = append(names, name)
			}
			if len(names) == 0 {
				names = []string{"?"}
			}
			fmt.Fprintf(out, "  %8vms  %-16v  %v\n", v.Offset, chord.CreateChordKey(v.Notes), strings.Join(names, ", "))
		}
	}
	return nil
}

func bassName(keys []uint8) string {
	bass := keys[0]
	for _, k := range keys {
		if k < bass {
			bass = k
		}
	}
	return chord.KeyName(bass)
}
