// Package chord is the matching engine: it enumerates which chord
// templates fit entirely inside a raga's pitch class set, for every
// possible root.
package chord

import (
	"errors"

	"github.com/jsphweid/ragadex/catalog"
	"github.com/jsphweid/ragadex/model"
	"github.com/jsphweid/ragadex/swara"
)

// TemplateAll selects every catalog template.
const TemplateAll = "all"

var ErrNoIntervals = errors.New("interval list is empty")

// extendIntervals appends one synthesized interval a third above the
// template's top note: max offset + 3, wrapped mod 12. The wrap can
// land on an offset already in the set; the duplicate is appended
// anyway so the caller still sees the set as grown.
func extendIntervals(intervals []int) []int {
	max := intervals[0]
	for _, v := range intervals[1:] {
		if v > max {
			max = v
		}
	}
	res := make([]int, len(intervals), len(intervals)+1)
	copy(res, intervals)
	return append(res, (max+3)%12)
}

func transpose(pattern model.PitchClassSet, root int, intervals []int) ([]int, bool) {
	notes := make([]int, 0, len(intervals))
	for _, off := range intervals {
		note := (root + off) % 12
		if !pattern[note] {
			return nil, false
		}
		var dup bool
		for _, n := range notes {
			if n == note {
				dup = true
				break
			}
		}
		if !dup {
			notes = append(notes, note)
		}
	}
	return notes, true
}

// Match returns every (template, root) pair whose note set fits inside
// pattern. templateFilter is TemplateAll or a single template id; an
// unknown id matches nothing. Roots absent from the pattern are
// skipped. With extend, templates of 3+ intervals get one extra
// synthesized interval; shorter templates are evaluated unchanged.
func Match(pattern model.PitchClassSet, templateFilter string, extend bool) []model.MatchedChord {
	var res []model.MatchedChord
	for _, tpl := range catalog.All() {
		if templateFilter != TemplateAll && tpl.ID != templateFilter {
			continue
		}
		intervals := tpl.Intervals
		var extended bool
		if extend && len(intervals) >= 3 {
			grown := extendIntervals(intervals)
			extended = len(grown) > len(intervals)
			intervals = grown
		}
		for root := 0; root < 12; root++ {
			if !pattern[root] {
				continue
			}
			notes, ok := transpose(pattern, root, intervals)
			if !ok {
				continue
			}
			res = append(res, model.MatchedChord{
				Root:       root,
				RootName:   swara.Names[root],
				Notes:      notes,
				Template:   tpl,
				IsExtended: extended,
			})
		}
	}
	return res
}

// MatchCustom checks an ad-hoc interval set against the pattern for
// all 12 roots. Intervals may be any integers; each is normalized to a
// pitch class first, and duplicates collapse. Unlike Match, the root
// itself does not have to be a scale member.
func MatchCustom(pattern model.PitchClassSet, intervals []int) ([]model.CustomMatch, error) {
	if len(intervals) == 0 {
		return nil, ErrNoIntervals
	}

	var normalized []int
	for _, v := range intervals {
		pc := ((v % 12) + 12) % 12
		var dup bool
		for _, n := range normalized {
			if n == pc {
				dup = true
				break
			}
		}
		if !dup {
			normalized = append(normalized, pc)
		}
	}

	res := make([]model.CustomMatch, 0)
	for root := 0; root < 12; root++ {
		notes, ok := transpose(pattern, root, normalized)
		if !ok {
			continue
		}
		res = append(res, model.CustomMatch{
			Root:     root,
			RootName: swara.Names[root],
			Notes:    notes,
		})
	}
	return res, nil
}

// FilterBySelectedNote keeps chords related to one pitch class: in
// FilterRoot mode only chords rooted on it, in FilterAny mode chords
// containing it anywhere.
func FilterBySelectedNote(matches []model.MatchedChord, note int, mode string) []model.MatchedChord {
	var res []model.MatchedChord
	for _, m := range matches {
		switch mode {
		case model.FilterAny:
			for _, n := range m.Notes {
				if n == note {
					res = append(res, m)
					break
				}
			}
		default:
			if m.Root == note {
				res = append(res, m)
			}
		}
	}
	return res
}
