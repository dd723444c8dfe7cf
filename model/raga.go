package model

// PitchClassSet marks which of the 12 tonic-relative chromatic pitch
// classes are present. Index 0 is Sa, index 1-11 the chromatic steps
// above it. Treated as immutable once built.
type PitchClassSet [12]bool

func NewPitchClassSet(pcs ...int) PitchClassSet {
	var p PitchClassSet
	for _, pc := range pcs {
		p[((pc%12)+12)%12] = true
	}
	return p
}

func (p PitchClassSet) Has(pc int) bool {
	return p[((pc%12)+12)%12]
}

func (p PitchClassSet) Union(other PitchClassSet) PitchClassSet {
	var res PitchClassSet
	for i := range p {
		res[i] = p[i] || other[i]
	}
	return res
}

// Notes returns the present pitch classes in ascending order.
func (p PitchClassSet) Notes() []int {
	res := make([]int, 0, 12)
	for i, on := range p {
		if on {
			res = append(res, i)
		}
	}
	return res
}

// RawRow is what the catalog loader hands the repository: one raga row
// with its hyphen-delimited aaroha/avaroha swara tokens, still unparsed.
type RawRow struct {
	Name    string
	Aaroha  string
	Avaroha string
}

type Raga struct {
	Name       string
	Ascending  PitchClassSet
	Descending PitchClassSet
	Combined   PitchClassSet
}

// RagaMetadata is optional descriptive data fetched from the metadata
// table, keyed by raga name.
type RagaMetadata struct {
	Thaat   string `json:"thaat"`
	Meaning string `json:"meaning"`
}

// Direction and match-mode values recognized by search and the matchers.
const (
	DirCombined   = "combined"
	DirSeparate   = "separate"
	DirAscending  = "ascending"
	DirDescending = "descending"

	MatchContains = "contains"
	MatchExact    = "exact"

	FilterRoot = "root"
	FilterAny  = "any"
)

// SearchCriteria is one request's worth of raga filters. The Asc/Desc
// sets only apply when Direction is DirSeparate; Include/Exclude only
// when it is DirCombined.
type SearchCriteria struct {
	Name        string
	NoteCount   string // "any", "5", "6" or "7"
	MatchMode   string // MatchContains or MatchExact
	Direction   string // DirCombined or DirSeparate
	Include     []int
	Exclude     []int
	IncludeAsc  []int
	ExcludeAsc  []int
	IncludeDesc []int
	ExcludeDesc []int
}

type EnrichedRaga struct {
	Name           string `json:"name"`
	NoteCount      int    `json:"note_count"`
	JatiAscending  string `json:"jati_ascending"`
	JatiDescending string `json:"jati_descending"`
	Ascending      []int  `json:"ascending"`
	Descending     []int  `json:"descending"`
	Combined       []int  `json:"combined"`
}
