package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/config"
	"github.com/jsphweid/chordex/file"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/registry"
	"github.com/jsphweid/chordex/sample"
	"github.com/jsphweid/chordex/scale"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	midiCmd.Flags().String("root", "", "root note (default C)")
	midiCmd.Flags().String("scale", "", "only render the chords fitting this scale, and the scale itself")
	midiCmd.Flags().Int("octave", 0, "octave of the root (default 4)")
	midiCmd.Flags().String("dir", "", "directory to write to (default midi)")
	_ = viper.BindPFlag("midi.root", midiCmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("midi.scale", midiCmd.Flags().Lookup("scale"))
	_ = viper.BindPFlag("midi.octave", midiCmd.Flags().Lookup("octave"))
	_ = viper.BindPFlag("midi.dir", midiCmd.Flags().Lookup("dir"))
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi [chord-label...]",
	Short: "Renders chords as MIDI files",
	Long: `Writes one SMF file per chord label placed on the configured root. Without
labels every chord label is rendered, or every label fitting --scale when it
is set, in which case the scale is rendered too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		n, err := renderMidi(s.reg, s.cfg.Midi, args, s.log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v files to %v\n", n, s.cfg.Midi.Dir)
		return nil
	},
}

func renderMidi(reg *registry.Registry, cfg config.MidiConfig, names []string, log *slog.Logger) (int, error) {
	root, err := reg.Root(cfg.Root)
	if err != nil {
		return 0, err
	}
	if err := util.EnsureDir(cfg.Dir); err != nil {
		return 0, err
	}
	opts := sample.Options{Velocity: uint8(cfg.Velocity), Length: uint32(cfg.Length)}

	labels := reg.ChordLabels
	var written int
	if cfg.Scale != "" {
		sl, err := reg.ScaleLabels.Get(cfg.Scale)
		if err != nil {
			return 0, err
		}
		sc, err := scale.New(root, sl)
		if err != nil {
			return 0, err
		}
		if err := writeScale(sc, cfg, opts); err != nil {
			return 0, err
		}
		written++
		labels = labels.Restrict(sl.Extended())
	}

	var selected []*chordlabel.ChordLabel
	if len(names) == 0 {
		selected = labels.Sorted()
	}
	for _, name := range names {
		c, err := labels.Get(name)
		if err != nil {
			return written, err
		}
		selected = append(selected, c)
	}

	for _, cl := range selected {
		c, err := chord.New(root, cl)
		if err != nil {
			log.Debug("Skipping", "reason", err)
			continue
		}
		keys, err := c.Keys(cfg.BaseKey())
		if err != nil {
			return written, fmt.Errorf("rendering %v at octave %d: %w", c.Name(), cfg.Octave, err)
		}
		s, err := sample.Chords(c.Name(), [][]uint8{keys}, opts)
		if err != nil {
			return written, err
		}
		path := filepath.Join(cfg.Dir, file.Midi(root.Name(), cl.Name()))
		if err := midi.WriteMidiFile(path, s); err != nil {
			return written, err
		}
		log.Debug("Wrote", "file", path)
		written++
	}
	return written, nil
}

func writeScale(sc scale.Scale, cfg config.MidiConfig, opts sample.Options) error {
	keys, err := sc.Keys(cfg.BaseKey())
	if err != nil {
		return fmt.Errorf("rendering at octave %d: %w", cfg.Octave, err)
	}
	s, err := sample.Scale(sc.Name(), keys, opts)
	if err != nil {
		return err
	}
	return midi.WriteMidiFile(filepath.Join(cfg.Dir, file.Midi(sc.Root.Name(), sc.Label.Name())), s)
}
