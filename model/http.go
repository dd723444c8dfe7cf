package model

type RagaListResponse struct {
	Ragas []string `json:"ragas"`
}

type RagaDetailResponse struct {
	Name           string        `json:"name"`
	Ascending      []int         `json:"ascending"`
	Descending     []int         `json:"descending"`
	Combined       []int         `json:"combined"`
	NoteCount      int           `json:"note_count"`
	JatiAscending  string        `json:"jati_ascending"`
	JatiDescending string        `json:"jati_descending"`
	Metadata       *RagaMetadata `json:"metadata,omitempty"`
}

type CustomMatchRequestBody struct {
	Intervals []int `json:"intervals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
