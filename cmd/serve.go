package cmd

import (
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/ragadex/aggregate"
	"github.com/jsphweid/ragadex/catalog"
	"github.com/jsphweid/ragadex/chord"
	"github.com/jsphweid/ragadex/constants"
	"github.com/jsphweid/ragadex/csvdata"
	"github.com/jsphweid/ragadex/db"
	"github.com/jsphweid/ragadex/model"
	"github.com/jsphweid/ragadex/raga"
	"github.com/jsphweid/ragadex/search"
	"github.com/jsphweid/ragadex/swara"
	"github.com/jsphweid/ragadex/western"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the raga chord API",
	Long:  `Serves the raga chord API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

type server struct {
	repo   *raga.Repository
	logger *slog.Logger
}

func newServer(repo *raga.Repository) *server {
	return &server{
		repo:   repo,
		logger: slog.Default().With(slog.String("component", "api")),
	}
}

func (s *server) router() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.Use(s.logRequest)
	r.HandleFunc("/templates", s.handleTemplates).Methods("GET")
	r.HandleFunc("/ragas", s.handleRagaNames).Methods("GET")
	r.HandleFunc("/ragas/search", s.handleSearch).Methods("GET")
	r.HandleFunc("/ragas/{name}", s.handleRagaDetail).Methods("GET")
	r.HandleFunc("/ragas/{name}/chords", s.handleChords).Methods("GET")
	r.HandleFunc("/ragas/{name}/custom", s.handleCustom).Methods("POST")
	r.HandleFunc("/ragas/{name}/aggregate", s.handleAggregate).Methods("GET")
	return r
}

func (s *server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("request",
			"id", uuid.New().String(),
			"method", r.Method,
			"path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// parsePitchClasses reads a comma separated list like "1,4,7" into
// pitch classes. An empty value is an empty set, not an error.
func parsePitchClasses(raw string) ([]int, bool) {
	if raw == "" {
		return nil, true
	}
	var res []int
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 11 {
			return nil, false
		}
		res = append(res, n)
	}
	return res, true
}

func (s *server) getRaga(w http.ResponseWriter, r *http.Request) (model.Raga, bool) {
	name := mux.Vars(r)["name"]
	rg, err := s.repo.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "no raga named "+name)
		return model.Raga{}, false
	}
	return rg, true
}

func (s *server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.All())
}

func (s *server) handleRagaNames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.RagaListResponse{Ragas: s.repo.Names()})
}

func (s *server) handleRagaDetail(w http.ResponseWriter, r *http.Request) {
	rg, ok := s.getRaga(w, r)
	if !ok {
		return
	}

	res := model.RagaDetailResponse{
		Name:           rg.Name,
		Ascending:      rg.Ascending.Notes(),
		Descending:     rg.Descending.Notes(),
		Combined:       rg.Combined.Notes(),
		NoteCount:      swara.CountActiveGroups(rg.Combined),
		JatiAscending:  swara.Jati(swara.CountActiveGroups(rg.Ascending)),
		JatiDescending: swara.Jati(swara.CountActiveGroups(rg.Descending)),
	}

	metadatas, err := db.GetRagaMetadatas([]string{rg.Name})
	if err != nil {
		s.logger.Warn("metadata lookup failed", "err", err)
	} else if m, ok := metadatas[rg.Name]; ok {
		res.Metadata = &m
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := model.SearchCriteria{
		Name:      q.Get("name"),
		NoteCount: q.Get("notes"),
		MatchMode: q.Get("matchMode"),
		Direction: q.Get("direction"),
	}

	sets := []struct {
		param string
		dst   *[]int
	}{
		{"include", &criteria.Include},
		{"exclude", &criteria.Exclude},
		{"includeAsc", &criteria.IncludeAsc},
		{"excludeAsc", &criteria.ExcludeAsc},
		{"includeDesc", &criteria.IncludeDesc},
		{"excludeDesc", &criteria.ExcludeDesc},
	}
	for _, set := range sets {
		pcs, ok := parsePitchClasses(q.Get(set.param))
		if !ok {
			writeError(w, http.StatusBadRequest, "bad pitch class list in "+set.param)
			return
		}
		*set.dst = pcs
	}

	writeJSON(w, http.StatusOK, search.Run(s.repo.All(), criteria))
}

// patternFor picks which of the raga's patterns a direction parameter
// refers to. Empty means combined.
func patternFor(rg model.Raga, direction string) (model.PitchClassSet, bool) {
	switch direction {
	case "", model.DirCombined:
		return rg.Combined, true
	case model.DirAscending:
		return rg.Ascending, true
	case model.DirDescending:
		return rg.Descending, true
	}
	return model.PitchClassSet{}, false
}

func (s *server) handleChords(w http.ResponseWriter, r *http.Request) {
	rg, ok := s.getRaga(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	pattern, ok := patternFor(rg, q.Get("direction"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown direction: "+q.Get("direction"))
		return
	}

	templateFilter := q.Get("template")
	if templateFilter == "" {
		templateFilter = chord.TemplateAll
	}
	if templateFilter != chord.TemplateAll {
		if _, ok := catalog.ByID(templateFilter); !ok {
			writeError(w, http.StatusBadRequest, "unknown template: "+templateFilter)
			return
		}
	}

	extend := false
	if raw := q.Get("extend"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "extend must be a boolean")
			return
		}
		extend = b
	}

	matches := chord.Match(pattern, templateFilter, extend)

	if raw := q.Get("note"); raw != "" {
		note, err := strconv.Atoi(raw)
		if err != nil || note < 0 || note > 11 {
			writeError(w, http.StatusBadRequest, "note must be a pitch class 0-11")
			return
		}
		mode := q.Get("filterMode")
		if mode == "" {
			mode = model.FilterRoot
		}
		if mode != model.FilterRoot && mode != model.FilterAny {
			writeError(w, http.StatusBadRequest, "unknown filterMode: "+mode)
			return
		}
		matches = chord.FilterBySelectedNote(matches, note, mode)
	}

	if raw := q.Get("tonic"); raw != "" {
		tonic, err := strconv.Atoi(raw)
		if err != nil || tonic < 0 || tonic > 11 {
			writeError(w, http.StatusBadRequest, "tonic must be a pitch class 0-11")
			return
		}
		matches = western.Annotate(matches, tonic)
	}

	if matches == nil {
		matches = []model.MatchedChord{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *server) handleCustom(w http.ResponseWriter, r *http.Request) {
	rg, ok := s.getRaga(w, r)
	if !ok {
		return
	}

	var body model.CustomMatchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "body must be json with an integer intervals list")
		return
	}

	pattern, ok := patternFor(rg, r.URL.Query().Get("direction"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown direction: "+r.URL.Query().Get("direction"))
		return
	}

	matches, err := chord.MatchCustom(pattern, body.Intervals)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	rg, ok := s.getRaga(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	direction := q.Get("direction")
	if direction == "" {
		direction = model.DirCombined
	}
	if direction != model.DirCombined && direction != model.DirSeparate {
		writeError(w, http.StatusBadRequest, "unknown direction: "+direction)
		return
	}

	extend := false
	if raw := q.Get("extend"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "extend must be a boolean")
			return
		}
		extend = b
	}

	writeJSON(w, http.StatusOK, aggregate.Count(rg, direction, extend))
}

func serve() {
	repo := raga.NewRepository(csvdata.FileLoader{Path: constants.GetDataPath()})
	s := newServer(repo)

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{"GET", "POST"},
	})

	addr := ":" + constants.GetPort()
	s.logger.Info("listening", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, c.Handler(s.router())))
}
