// Package aggregate counts matchable chords across the whole catalog
// for one raga.
package aggregate

import (
	"github.com/jsphweid/ragadex/chord"
	"github.com/jsphweid/ragadex/model"
)

// Count sums basic and extended chord matches over every catalog
// template. In separate mode both direction patterns are counted, so a
// chord playable both ways counts twice; that is the point of the
// split, not a bug.
func Count(r model.Raga, direction string, extend bool) model.AggregateResult {
	patterns := []model.PitchClassSet{r.Combined}
	if direction == model.DirSeparate {
		patterns = []model.PitchClassSet{r.Ascending, r.Descending}
	}

	var res model.AggregateResult
	for _, p := range patterns {
		for _, m := range chord.Match(p, chord.TemplateAll, extend) {
			if m.IsExtended {
				res.Extended++
			} else {
				res.Basic++
			}
		}
	}
	return res
}
