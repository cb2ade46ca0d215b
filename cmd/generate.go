package cmd

import (
	"fmt"
	"log/slog"

	"github.com/jsphweid/chordex/dump"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/registry"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Writes every dump",
	Long: `Recreates the output directory and writes the interval, scale, chord
label, chord and relationship dumps into it, plus manifest.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		m, err := Generate(s.reg, s.cfg.OutDir, s.cfg.Pretty, s.log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v files to %v (run %v)\n", len(m.Files), s.cfg.OutDir, m.RunID)
		return nil
	},
}

// Generate recreates dir and writes every dump into it.
func Generate(reg *registry.Registry, dir string, prettify bool, log *slog.Logger) (model.Manifest, error) {
	if err := util.RecreateOutputDir(dir); err != nil {
		return model.Manifest{}, err
	}
	log.Info("Writing dumps", "dir", dir)
	return dump.New(dir, reg, prettify, log).All()
}
