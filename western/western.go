// Package western renders matched chords as western chord names for a
// chosen tonic. Presentation only; matching never depends on it.
package western

import (
	"fmt"
	"strings"

	"github.com/jsphweid/ragadex/model"
)

// Flat spellings throughout.
var noteNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// NoteName gives the western name of a pitch class.
func NoteName(pc int) string {
	return noteNames[((pc%12)+12)%12]
}

// quality suffix per template id. Unknown ids fall back to the
// template's display name so new catalog entries degrade readably.
func qualitySuffix(tpl model.ChordTemplate) string {
	switch tpl.ID {
	case "major":
		return ""
	case "minor":
		return "m"
	case "diminished":
		return "dim"
	case "augmented":
		return "aug"
	case "sus4":
		return "sus4"
	case "sus2":
		return "sus2"
	case "major7":
		return "maj7"
	case "minor7":
		return "m7"
	case "dom7":
		return "7"
	case "dim7":
		return "dim7"
	case "m7b5":
		return "m7♭5"
	case "maj6":
		return "6"
	case "min6":
		return "m6"
	default:
		return tpl.Name
	}
}

// Annotate fills in the Western field on each chord, transposing the
// tonic-relative pitch classes by tonic into absolute note names.
func Annotate(matches []model.MatchedChord, tonic int) []model.MatchedChord {
	res := make([]model.MatchedChord, len(matches))
	for i, m := range matches {
		names := make([]string, len(m.Notes))
		for j, n := range m.Notes {
			names[j] = NoteName(n + tonic)
		}
		m.Western = fmt.Sprintf("%v%v: %v",
			NoteName(m.Root+tonic), qualitySuffix(m.Template), strings.Join(names, " - "))
		res[i] = m
	}
	return res
}
