package note

import "sort"

// reachableNames groups every note name interval arithmetic may produce by
// pitch class (C = 0). E##, B##, Fbb and Cbb are not reachable.
var reachableNames = [12][]string{
	{"B#", "C", "Dbb"},
	{"C#", "Db"},
	{"C##", "D", "Ebb"},
	{"D#", "Eb"},
	{"D##", "E", "Fb"},
	{"E#", "F", "Gbb"},
	{"F#", "Gb"},
	{"F##", "G", "Abb"},
	{"G#", "Ab"},
	{"G##", "A", "Bbb"},
	{"A#", "Bb"},
	{"A##", "B", "Cb"},
}

// relativeNames spells the major scale of every root note.
var relativeNames = map[string][7]string{
	"A":  {"A", "B", "C#", "D", "E", "F#", "G#"},
	"A#": {"A#", "B#", "C##", "D#", "E#", "F##", "G##"},
	"Ab": {"Ab", "Bb", "C", "Db", "Eb", "F", "G"},
	"B":  {"B", "C#", "D#", "E", "F#", "G#", "A#"},
	"Bb": {"Bb", "C", "D", "Eb", "F", "G", "A"},
	"C":  {"C", "D", "E", "F", "G", "A", "B"},
	"C#": {"C#", "D#", "E#", "F#", "G#", "A#", "B#"},
	"D":  {"D", "E", "F#", "G", "A", "B", "C#"},
	"D#": {"D#", "E#", "F##", "G#", "A#", "B#", "C##"},
	"Db": {"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"},
	"E":  {"E", "F#", "G#", "A", "B", "C#", "D#"},
	"Eb": {"Eb", "F", "G", "Ab", "Bb", "C", "D"},
	"F":  {"F", "G", "A", "Bb", "C", "D", "E"},
	"F#": {"F#", "G#", "A#", "B", "C#", "D#", "E#"},
	"G":  {"G", "A", "B", "C", "D", "E", "F#"},
	"G#": {"G#", "A#", "B#", "C#", "D#", "E#", "F##"},
	"Gb": {"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"},
}

var pitchClasses = func() map[string]int {
	res := make(map[string]int)
	for pc, names := range reachableNames {
		for _, n := range names {
			res[n] = pc
		}
	}
	return res
}()

func IsReachable(name string) bool {
	_, ok := pitchClasses[name]
	return ok
}

// IsRoot reports whether intervals can be added to the note name.
func IsRoot(name string) bool {
	_, ok := relativeNames[name]
	return ok
}

func RootNames() []string {
	res := make([]string, 0, len(relativeNames))
	for n := range relativeNames {
		res = append(res, n)
	}
	sort.Strings(res)
	return res
}

func ReachableNames() []string {
	var res []string
	for _, names := range reachableNames {
		res = append(res, names...)
	}
	return res
}

func flatten(name string) string {
	if name[len(name)-1] == '#' {
		return name[:len(name)-1]
	}
	return name + "b"
}

func sharpen(name string) string {
	if name[len(name)-1] == 'b' && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name + "#"
}
