package config

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/constants"
	"github.com/spf13/viper"
)

// MidiConfig drives the rendering of chords and scales as SMF files.
type MidiConfig struct {
	Dir      string `mapstructure:"dir"`
	Root     string `mapstructure:"root"`
	Scale    string `mapstructure:"scale"`
	Octave   int    `mapstructure:"octave"`
	Velocity int    `mapstructure:"velocity"`
	Length   int    `mapstructure:"length"`
}

// Config holds all runtime configuration.
// Values are populated from .chordex.yaml, CHORDEX_* env vars, and CLI flags.
type Config struct {
	OutDir  string     `mapstructure:"out_dir"`
	Pretty  bool       `mapstructure:"pretty"`
	Verbose bool       `mapstructure:"verbose"`
	Midi    MidiConfig `mapstructure:"midi"`
}

// BindEnv makes CHORDEX_* env vars override keys, with "." read as "_"
// (CHORDEX_MIDI_OCTAVE sets midi.octave).
func BindEnv() {
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("out_dir", constants.DefaultOutDir)
	viper.SetDefault("pretty", true)
	viper.SetDefault("verbose", false)
	viper.SetDefault("midi.dir", constants.DefaultMidiDir)
	viper.SetDefault("midi.root", constants.DefaultRoot)
	viper.SetDefault("midi.scale", "")
	viper.SetDefault("midi.octave", constants.DefaultOctave)
	viper.SetDefault("midi.velocity", constants.DefaultVelocity)
	viper.SetDefault("midi.length", constants.DefaultNoteLength)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.OutDir == "" {
		return fmt.Errorf("out_dir must not be empty")
	}
	if c.Midi.Octave < 0 || c.Midi.Octave > 9 {
		return fmt.Errorf("midi.octave must be between 0 and 9, got %d", c.Midi.Octave)
	}
	if c.Midi.Velocity < 1 || c.Midi.Velocity > 127 {
		return fmt.Errorf("midi.velocity must be between 1 and 127, got %d", c.Midi.Velocity)
	}
	if c.Midi.Length < 1 {
		return fmt.Errorf("midi.length must be positive, got %d", c.Midi.Length)
	}
	return nil
}

// BaseKey is the MIDI key of the C starting the configured octave.
func (m MidiConfig) BaseKey() uint8 {
	return uint8(constants.MidiKeyOfC + m.Octave*12)
}
