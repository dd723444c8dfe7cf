// Package swara holds the fixed tables relating swara letter notation
// to pitch classes, and the jati (scale size) classification.
package swara

import (
	"fmt"

	"github.com/jsphweid/ragadex/model"
)

// Letter codes are case-sensitive: lowercase is the komal (flat)
// variant, uppercase shuddha/tivra.
var letterToPitchClass = map[rune]int{
	'S': 0,
	'r': 1,
	'R': 2,
	'g': 3,
	'G': 4,
	'm': 5,
	'M': 6,
	'P': 7,
	'd': 8,
	'D': 9,
	'n': 10,
	'N': 11,
}

// Names maps each pitch class back to its swara letter.
var Names = [12]string{"S", "r", "R", "g", "G", "m", "M", "P", "d", "D", "n", "N"}

// The 7 swara groups: each natural scale step with its chromatic
// variants. A pattern's note count is the number of active groups, not
// the number of raw pitch classes.
var groups = [7][]int{
	{0},
	{1, 2},
	{3, 4},
	{5, 6},
	{7},
	{8, 9},
	{10, 11},
}

// ParsePattern turns a hyphen-delimited swara token like "S-R-g-P-n"
// into a pitch class set. Characters outside the letter table are
// ignored, so ornament markers and octave ticks pass through harmlessly.
func ParsePattern(token string) model.PitchClassSet {
	var p model.PitchClassSet
	for _, c := range token {
		if pc, ok := letterToPitchClass[c]; ok {
			p[pc] = true
		}
	}
	return p
}

// CountActiveGroups returns how many of the 7 swara groups have at
// least one member present in the pattern.
func CountActiveGroups(p model.PitchClassSet) int {
	var count int
	for _, group := range groups {
		for _, pc := range group {
			if p[pc] {
				count++
				break
			}
		}
	}
	return count
}

// Jati classifies a raga by its active group count.
func Jati(count int) string {
	switch count {
	case 5:
		return "Audav (Pentatonic)"
	case 6:
		return "Shadav (Hexatonic)"
	case 7:
		return "Sampoorna (Heptatonic)"
	default:
		return fmt.Sprintf("%v notes", count)
	}
}
