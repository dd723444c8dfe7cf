package catalog

import "github.com/jsphweid/ragadex/model"

// The chord template table. Order is fixed and is the iteration order
// the matcher reports results in.
var templates = []model.ChordTemplate{
	{ID: "major", Name: "Major", Intervals: []int{0, 4, 7}, Color: "#4e79a7"},
	{ID: "minor", Name: "Minor", Intervals: []int{0, 3, 7}, Color: "#f28e2b"},
	{ID: "diminished", Name: "Diminished", Intervals: []int{0, 3, 6}, Color: "#e15759"},
	{ID: "augmented", Name: "Augmented", Intervals: []int{0, 4, 8}, Color: "#76b7b2"},
	{ID: "sus2", Name: "Suspended 2nd", Intervals: []int{0, 2, 7}, Color: "#59a14f"},
	{ID: "sus4", Name: "Suspended 4th", Intervals: []int{0, 5, 7}, Color: "#edc949"},
	{ID: "major7", Name: "Major 7th", Intervals: []int{0, 4, 7, 11}, Color: "#af7aa1"},
	{ID: "minor7", Name: "Minor 7th", Intervals: []int{0, 3, 7, 10}, Color: "#ff9da7"},
	{ID: "dom7", Name: "Dominant 7th", Intervals: []int{0, 4, 7, 10}, Color: "#9c755f"},
	{ID: "dim7", Name: "Diminished 7th", Intervals: []int{0, 3, 6, 9}, Color: "#bab0ab"},
	{ID: "m7b5", Name: "Half-diminished", Intervals: []int{0, 3, 6, 10}, Color: "#d37295"},
	{ID: "maj6", Name: "Major 6th", Intervals: []int{0, 4, 7, 9}, Color: "#86bcb6"},
	{ID: "min6", Name: "Minor 6th", Intervals: []int{0, 3, 7, 9}, Color: "#f1ce63"},
}

func All() []model.ChordTemplate {
	return templates
}

func ByID(id string) (model.ChordTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return model.ChordTemplate{}, false
}
