package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/ragadex/chord"
	"github.com/jsphweid/ragadex/model"
)

func makeRaga(asc, desc []int) model.Raga {
	a := model.NewPitchClassSet(asc...)
	d := model.NewPitchClassSet(desc...)
	return model.Raga{Name: "test", Ascending: a, Descending: d, Combined: a.Union(d)}
}

func TestCombinedCountsMatchTheMatcher(t *testing.T) {
	rg := makeRaga([]int{0, 2, 4, 5, 7, 9, 11}, []int{0, 2, 4, 5, 7, 9, 11})

	for _, extend := range []bool{false, true} {
		res := Count(rg, model.DirCombined, extend)
		matches := chord.Match(rg.Combined, chord.TemplateAll, extend)

		var basic, extended int
		for _, m := range matches {
			if m.IsExtended {
				extended++
			} else {
				basic++
			}
		}

		assert := assert.New(t)
		assert.Equal(basic, res.Basic)
		assert.Equal(extended, res.Extended)
		assert.Equal(len(matches), res.Basic+res.Extended)
	}
}

func TestWithoutExtensionEverythingIsBasic(t *testing.T) {
	rg := makeRaga([]int{0, 2, 4, 7, 9}, []int{0, 2, 4, 7, 9})
	res := Count(rg, model.DirCombined, false)

	assert := assert.New(t)
	assert.Equal(0, res.Extended)
	assert.Greater(res.Basic, 0)
}

func TestSeparateModeCountsBothDirections(t *testing.T) {
	// identical patterns: every chord matches both ways and counts
	// twice, deliberately
	rg := makeRaga([]int{0, 2, 4, 5, 7, 9, 11}, []int{0, 2, 4, 5, 7, 9, 11})

	combined := Count(rg, model.DirCombined, true)
	separate := Count(rg, model.DirSeparate, true)

	assert := assert.New(t)
	assert.Equal(2*combined.Basic, separate.Basic)
	assert.Equal(2*combined.Extended, separate.Extended)
}

func TestSeparateModeUsesEachPattern(t *testing.T) {
	// aaroha is a bare triad, avaroha is the full scale
	rg := makeRaga([]int{0, 4, 7}, []int{0, 2, 4, 5, 7, 9, 11})

	separate := Count(rg, model.DirSeparate, false)

	ascMatches := chord.Match(rg.Ascending, chord.TemplateAll, false)
	descMatches := chord.Match(rg.Descending, chord.TemplateAll, false)
	assert.Equal(t, len(ascMatches)+len(descMatches), separate.Basic)
}
