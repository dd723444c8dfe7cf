// Package export writes matched chords out as a standard MIDI file,
// one chord per beat, so results can be auditioned in any player.
package export

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/ragadex/model"
)

const (
	ticksPerBeat = 960
	baseKey      = 60 // middle C carries Sa when tonic is 0
	velocity     = 96
)

func chordKeys(m model.MatchedChord, tonic int) []uint8 {
	keys := make([]uint8, 0, len(m.Notes))
	for _, n := range m.Notes {
		// voice the chord upward from its root
		offset := ((n - m.Root) + 12) % 12
		keys = append(keys, uint8(baseKey+(m.Root+tonic)%12+offset))
	}
	return keys
}

// Write renders the chords into an SMF at path. Chords sound in slice
// order, each held for one beat.
func Write(path string, matches []model.MatchedChord, tonic int) error {
	s := smf.New()
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(90))

	for _, m := range matches {
		keys := chordKeys(m, tonic)
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(0, k, velocity))
		}
		for i, k := range keys {
			var delta uint32
			if i == 0 {
				delta = ticksPerBeat
			}
			tr.Add(delta, midi.NoteOff(0, k))
		}
	}

	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return err
	}
	return s.WriteFile(path)
}
