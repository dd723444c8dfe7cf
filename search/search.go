// Package search filters the raga list by name, scale size and pitch
// class constraints. All stages are conjunctive and order-preserving.
package search

import (
	"strconv"
	"strings"

	"github.com/jsphweid/ragadex/model"
	"github.com/jsphweid/ragadex/swara"
)

func enrich(r model.Raga) model.EnrichedRaga {
	return model.EnrichedRaga{
		Name:           r.Name,
		NoteCount:      swara.CountActiveGroups(r.Combined),
		JatiAscending:  swara.Jati(swara.CountActiveGroups(r.Ascending)),
		JatiDescending: swara.Jati(swara.CountActiveGroups(r.Descending)),
		Ascending:      r.Ascending.Notes(),
		Descending:     r.Descending.Notes(),
		Combined:       r.Combined.Notes(),
	}
}

// containsMatch requires every included pitch class present and every
// excluded one absent. The tonic joins the include set whenever the
// caller included anything at all.
func containsMatch(p model.PitchClassSet, include, exclude []int) bool {
	if len(include) > 0 && !p[0] {
		return false
	}
	for _, pc := range include {
		if !p.Has(pc) {
			return false
		}
	}
	for _, pc := range exclude {
		if p.Has(pc) {
			return false
		}
	}
	return true
}

// exactMatch requires the pattern to equal include ∪ {Sa} as a set.
// Excludes are redundant here and ignored.
func exactMatch(p model.PitchClassSet, include []int) bool {
	target := model.NewPitchClassSet(append([]int{0}, include...)...)
	return p == target
}

func patternMatches(p model.PitchClassSet, mode string, include, exclude []int) bool {
	if mode == model.MatchExact {
		return exactMatch(p, include)
	}
	return containsMatch(p, include, exclude)
}

// Run applies the criteria to the full raga list and returns the
// survivors, enriched, in their original order.
func Run(ragas []model.Raga, c model.SearchCriteria) []model.EnrichedRaga {
	res := make([]model.EnrichedRaga, 0)
	for _, r := range ragas {
		e := enrich(r)

		if c.Name != "" &&
			!strings.Contains(strings.ToLower(r.Name), strings.ToLower(c.Name)) {
			continue
		}

		if c.NoteCount != "" && c.NoteCount != "any" {
			want, err := strconv.Atoi(c.NoteCount)
			if err != nil || e.NoteCount != want {
				continue
			}
		}

		if c.Direction == model.DirSeparate {
			if !patternMatches(r.Ascending, c.MatchMode, c.IncludeAsc, c.ExcludeAsc) {
				continue
			}
			if !patternMatches(r.Descending, c.MatchMode, c.IncludeDesc, c.ExcludeDesc) {
				continue
			}
		} else {
			if !patternMatches(r.Combined, c.MatchMode, c.Include, c.Exclude) {
				continue
			}
		}

		res = append(res, e)
	}
	return res
}
