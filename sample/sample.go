package sample

import (
	"github.com/jsphweid/chordex/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const channel = 0

type Options struct {
	Velocity uint8
	// in ticks
	Length uint32
}

func newTrack(name string) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(120))
	return tr
}

func addChord(tr *smf.Track, keys []uint8, opts Options) {
	for _, k := range keys {
		tr.Add(0, midi.NoteOn(channel, k, opts.Velocity))
	}
	for i, k := range keys {
		var delta uint32
		if i == 0 {
			delta = opts.Length
		}
		tr.Add(delta, midi.NoteOff(channel, k))
	}
}

// Chords renders every key set as a block chord, one after the other.
func Chords(name string, chords [][]uint8, opts Options) (*smf.SMF, error) {
	s := smf.New()
	tr := newTrack(name)
	for _, keys := range chords {
		addChord(&tr, keys, opts)
	}
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return nil, err
	}
	return s, nil
}

// Scale renders the keys one at a time, then all of them together.
func Scale(name string, keys []uint8, opts Options) (*smf.SMF, error) {
	s := smf.New()
	tr := newTrack(name)
	for _, k := range keys {
		addChord(&tr, []uint8{k}, opts)
	}
	addChord(&tr, keys, opts)
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return nil, err
	}
	return s, nil
}

// Excerpt keeps the first maxNotes note on/off events at or after
// ticksOffset on every track. Other events are kept but squashed to the
// start.
func Excerpt(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case evt.Message.Is(midi.NoteOnMsg),
				evt.Message.Is(midi.NoteOffMsg):
				if absTicks < ticksOffset {
					continue
				}
				if numNoteOnOff == 0 {
					// the first kept note starts right away
					evt.Delta = 0
				}
				newTrack = append(newTrack, evt)
				numNoteOnOff += 1
				if maxNotes > 0 && numNoteOnOff >= maxNotes {
					break TrackEventLoop
				}
			default:
				evt.Delta = util.Min(evt.Delta, 1)
				newTrack = append(newTrack, evt)
			}
		}
		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
