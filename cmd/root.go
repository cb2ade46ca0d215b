package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/chordex/config"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/logger"
	"github.com/jsphweid/chordex/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Chord and scale tables",
	Long: `chordex derives every chord label, scale and relationship between chords
from a small set of templates, and writes them out as text and MIDI files.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// Run executes the command line args, printing to out.
func Run(args []string, out io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .chordex.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("out", "o", constants.DefaultOutDir, "output directory")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("out_dir", rootCmd.PersistentFlags().Lookup("out"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(constants.ConfigName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// session is what every command starts from.
type session struct {
	cfg config.Config
	log *slog.Logger
	reg *registry.Registry
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.Setup(cmd.ErrOrStderr(), cfg.Verbose)

	reg, err := registry.Build()
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	log.Debug("Built registry",
		"chord_labels", humanize.Comma(int64(reg.ChordLabels.Len())),
		"relationships", humanize.Comma(int64(reg.Relationships.Len())),
	)
	return &session{cfg: cfg, log: log, reg: reg}, nil
}
