package swara

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/ragadex/model"
)

func TestParsePattern(t *testing.T) {
	assert := assert.New(t)

	p := ParsePattern("S-R-G-m-P-D-N")
	assert.Equal(model.NewPitchClassSet(0, 2, 4, 5, 7, 9, 11), p)

	// case carries meaning: r is komal Re, R is shuddha Re
	assert.Equal(model.NewPitchClassSet(0, 1), ParsePattern("S-r"))
	assert.Equal(model.NewPitchClassSet(0, 2), ParsePattern("S-R"))
}

func TestParsePatternIgnoresUnknownLetters(t *testing.T) {
	p := ParsePattern("S'-x-P-Q")
	assert.Equal(t, model.NewPitchClassSet(0, 7), p)
}

func TestCountActiveGroups(t *testing.T) {
	assert := assert.New(t)

	// both Re variants present still count as one group
	assert.Equal(2, CountActiveGroups(model.NewPitchClassSet(0, 1, 2)))

	// full chromatic covers all 7 groups
	assert.Equal(7, CountActiveGroups(model.NewPitchClassSet(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)))

	// pentatonic
	assert.Equal(5, CountActiveGroups(model.NewPitchClassSet(0, 2, 4, 7, 9)))

	assert.Equal(1, CountActiveGroups(model.NewPitchClassSet(0)))
}

func TestJati(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{5, "Audav (Pentatonic)"},
		{6, "Shadav (Hexatonic)"},
		{7, "Sampoorna (Heptatonic)"},
		{4, "4 notes"},
		{1, "1 notes"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("count=%v", c.count), func(t *testing.T) {
			assert.Equal(t, c.want, Jati(c.count))
		})
	}
}
