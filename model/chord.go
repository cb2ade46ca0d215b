package model

type Notes = []uint8

// Voicing is a set of MIDI keys sounding together in a file.
type Voicing struct {
	// millis since the start of the file
	Offset uint32
	Notes  Notes
}

type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}
