package model

type ChordTemplate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"`
	Color     string `json:"color"`
}

type MatchedChord struct {
	Root       int           `json:"root"`
	RootName   string        `json:"root_name"`
	Notes      []int         `json:"notes"`
	Template   ChordTemplate `json:"template"`
	IsExtended bool          `json:"is_extended"`

	// Western is only set once a tonic has been applied.
	Western string `json:"western,omitempty"`
}

// CustomMatch is the result shape for ad-hoc interval matching, which
// carries no template.
type CustomMatch struct {
	Root     int    `json:"root"`
	RootName string `json:"root_name"`
	Notes    []int  `json:"notes"`
}

type AggregateResult struct {
	Basic    int `json:"basic"`
	Extended int `json:"extended"`
}
