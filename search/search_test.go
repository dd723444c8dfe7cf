package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/ragadex/model"
)

func makeRaga(name string, asc, desc []int) model.Raga {
	a := model.NewPitchClassSet(asc...)
	d := model.NewPitchClassSet(desc...)
	return model.Raga{Name: name, Ascending: a, Descending: d, Combined: a.Union(d)}
}

var fixture = []model.Raga{
	makeRaga("Bilaval", []int{0, 2, 4, 5, 7, 9, 11}, []int{0, 2, 4, 5, 7, 9, 11}),
	makeRaga("Bhoopali", []int{0, 2, 4, 7, 9}, []int{0, 2, 4, 7, 9}),
	makeRaga("Malkauns", []int{0, 3, 5, 8, 10}, []int{0, 3, 5, 8, 10}),
	makeRaga("Desh", []int{0, 2, 5, 7, 11}, []int{0, 2, 4, 5, 7, 9, 11}),
	makeRaga("Saveri", []int{0, 1, 5, 7, 8}, []int{0, 1, 4, 5, 7, 8, 11}),
}

func names(res []model.EnrichedRaga) []string {
	var out []string
	for _, r := range res {
		out = append(out, r.Name)
	}
	return out
}

func TestNoCriteriaReturnsEverythingEnriched(t *testing.T) {
	res := Run(fixture, model.SearchCriteria{})

	assert := assert.New(t)
	assert.Len(res, len(fixture))
	assert.Equal("Bilaval", res[0].Name)
	assert.Equal(7, res[0].NoteCount)
	assert.Equal("Sampoorna (Heptatonic)", res[0].JatiAscending)
	assert.Equal("Audav (Pentatonic)", res[1].JatiAscending)
}

func TestNameFilterIsCaseInsensitiveSubstring(t *testing.T) {
	res := Run(fixture, model.SearchCriteria{Name: "kau"})
	assert.Equal(t, []string{"Malkauns"}, names(res))

	res = Run(fixture, model.SearchCriteria{Name: "BILAVAL"})
	assert.Equal(t, []string{"Bilaval"}, names(res))
}

func TestNoteCountFilter(t *testing.T) {
	assert := assert.New(t)

	res := Run(fixture, model.SearchCriteria{NoteCount: "5"})
	assert.Equal([]string{"Bhoopali", "Malkauns"}, names(res))

	// Desh ascends with 5 notes but combines to 7; the count uses the
	// combined pattern
	res = Run(fixture, model.SearchCriteria{NoteCount: "7"})
	assert.Equal([]string{"Bilaval", "Desh", "Saveri"}, names(res))

	res = Run(fixture, model.SearchCriteria{NoteCount: "any"})
	assert.Len(res, len(fixture))
}

func TestContainsInclude(t *testing.T) {
	res := Run(fixture, model.SearchCriteria{Include: []int{3, 10}})
	assert.Equal(t, []string{"Malkauns"}, names(res))
}

func TestContainsIncludeRequiresTonic(t *testing.T) {
	noTonic := makeRaga("Phantom", []int{2, 5, 9}, []int{2, 5, 9})
	ragas := append([]model.Raga{noTonic}, fixture...)

	// 2,5,9 are all in Phantom, but a non-empty include set also
	// implies Sa
	res := Run(ragas, model.SearchCriteria{Include: []int{2, 5, 9}})
	assert.NotContains(t, names(res), "Phantom")
}

func TestContainsExclude(t *testing.T) {
	res := Run(fixture, model.SearchCriteria{Exclude: []int{4}})
	assert.Equal(t, []string{"Malkauns"}, names(res))
}

func TestExactMatch(t *testing.T) {
	res := Run(fixture, model.SearchCriteria{
		MatchMode: model.MatchExact,
		Include:   []int{2, 4, 7, 9},
	})
	assert.Equal(t, []string{"Bhoopali"}, names(res))
}

func TestExactMatchEmptyIncludeMeansTonicOnly(t *testing.T) {
	tonicOnly := makeRaga("Drone", []int{0}, []int{0})
	ragas := append([]model.Raga{tonicOnly}, fixture...)

	res := Run(ragas, model.SearchCriteria{MatchMode: model.MatchExact})
	assert.Equal(t, []string{"Drone"}, names(res))
}

func TestExactMatchIgnoresExcludes(t *testing.T) {
	res := Run(fixture, model.SearchCriteria{
		MatchMode: model.MatchExact,
		Include:   []int{2, 4, 7, 9},
		Exclude:   []int{2},
	})
	assert.Equal(t, []string{"Bhoopali"}, names(res))
}

func TestSeparateDirectionAppliesPerPattern(t *testing.T) {
	assert := assert.New(t)

	// 11 is in Desh's aaroha; 9 is only in its avaroha
	res := Run(fixture, model.SearchCriteria{
		Direction:  model.DirSeparate,
		IncludeAsc: []int{11},
	})
	assert.Contains(names(res), "Desh")

	res = Run(fixture, model.SearchCriteria{
		Direction:  model.DirSeparate,
		IncludeAsc: []int{9},
	})
	assert.NotContains(names(res), "Desh")

	// both sides must pass
	res = Run(fixture, model.SearchCriteria{
		Direction:   model.DirSeparate,
		IncludeAsc:  []int{11},
		ExcludeDesc: []int{9},
	})
	assert.NotContains(names(res), "Desh")
}

func TestStagesAreConjunctive(t *testing.T) {
	res := Run(fixture, model.SearchCriteria{
		Name:      "a",
		NoteCount: "5",
		Include:   []int{3},
	})
	assert.Equal(t, []string{"Malkauns"}, names(res))
}
