package constants

const (
	AppName    = "chordex"
	EnvPrefix  = "CHORDEX"
	ConfigName = ".chordex"
)

// Defaults, overridden by .chordex.yaml, CHORDEX_* env vars and flags.
const (
	DefaultOutDir   = "data"
	DefaultMidiDir  = "midi"
	DefaultRoot     = "C"
	DefaultOctave   = 4
	DefaultVelocity = 100
	// in ticks, a quarter note at the default resolution
	DefaultNoteLength = 960
)

// MidiKeyOfC is the key of the C starting octave 0; octave 4 starts at 60.
const MidiKeyOfC = 12
