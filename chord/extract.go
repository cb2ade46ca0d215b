package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordex/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func getVoicing(pressed map[uint8]int64, offset int64) model.Voicing {
	var v model.Voicing
	for note := range pressed {
		v.Notes = append(v.Notes, note)
	}
	sort.Slice(v.Notes, func(i, j int) bool {
		return v.Notes[i] < v.Notes[j]
	})
	// millis are accurate enough and fit 1200 hours into 32 bits
	v.Offset = uint32(offset / 1000)
	return v
}

// GetChords returns every distinct set of keys sounding together in s,
// ordered by the time it starts.
func GetChords(s *smf.SMF) (voicings []model.Voicing, err error) {
	// NOTE: smf can panic on malformed tracks
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not read every track: %v", r)
		}
	}()

	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// smaller offsets first, note offs before note ons
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToVoicing := make(map[int64]model.Voicing)
	pressed := make(map[uint8]int64)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = evt.Offset
		}
		timestampToVoicing[evt.Offset] = getVoicing(pressed, evt.Offset)
	}

	offsets := make([]int64, 0, len(timestampToVoicing))
	for k := range timestampToVoicing {
		offsets = append(offsets, k)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	for _, k := range offsets {
		v := timestampToVoicing[k]
		if len(v.Notes) > 0 {
			voicings = append(voicings, v)
		}
	}
	return voicings, nil
}
