// Package raga owns the parsed raga catalog: a load-once cache over an
// external loader.
package raga

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsphweid/ragadex/model"
	"github.com/jsphweid/ragadex/swara"
)

var ErrNotFound = errors.New("raga not found")

// Loader produces the raw catalog rows. The repository never cares
// where they come from.
type Loader interface {
	Load() ([]model.RawRow, error)
}

// Repository holds every parsed raga for the life of the process. The
// load happens on first access; a failed load is logged and cached as
// an empty catalog, so nothing retries it.
type Repository struct {
	loader Loader
	once   sync.Once
	ragas  []model.Raga
}

func NewRepository(loader Loader) *Repository {
	return &Repository{loader: loader}
}

func (r *Repository) load() {
	rows, err := r.loader.Load()
	if err != nil {
		slog.Error("could not load raga catalog", "err", err)
		r.ragas = []model.Raga{}
		return
	}

	ragas := make([]model.Raga, 0, len(rows))
	for _, row := range rows {
		asc := swara.ParsePattern(row.Aaroha)
		desc := swara.ParsePattern(row.Avaroha)
		ragas = append(ragas, model.Raga{
			Name:       row.Name,
			Ascending:  asc,
			Descending: desc,
			Combined:   asc.Union(desc),
		})
	}
	r.ragas = ragas
}

// All returns every raga in catalog order. Callers must not mutate the
// returned slice.
func (r *Repository) All() []model.Raga {
	r.once.Do(r.load)
	return r.ragas
}

func (r *Repository) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, rg := range all {
		names[i] = rg.Name
	}
	return names
}

// Get looks a raga up by name, case-insensitively.
func (r *Repository) Get(name string) (model.Raga, error) {
	for _, rg := range r.All() {
		if strings.EqualFold(rg.Name, name) {
			return rg, nil
		}
	}
	return model.Raga{}, ErrNotFound
}
