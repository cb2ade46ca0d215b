// Package pretty swaps the ASCII spellings of chord and note symbols for
// music glyphs.
package pretty

import "strings"

// Double accidentals and "dim" are matched before the single characters.
var replacer = strings.NewReplacer(
	"bb", "𝄫",
	"##", "𝄪",
	"dim", "°",
	"h", "ø",
	"M", "△",
	"b", "♭",
	"#", "♯",
)

// Symbol prettifies a note name, interval or chord symbol, e.g. "Bbhm7"
// becomes "B♭øm7". It must not be given words such as scale names.
func Symbol(s string) string {
	return replacer.Replace(s)
}

// Identity leaves s as is. It stands in for Symbol when glyphs are off.
func Identity(s string) string {
	return s
}

func Formatter(enabled bool) func(string) string {
	if enabled {
		return Symbol
	}
	return Identity
}
