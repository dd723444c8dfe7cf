// Package csvdata loads the raga catalog from a CSV file with
// name,aaroha,avaroha columns.
package csvdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/ragadex/model"
)

var ErrUnreadable = errors.New("raga csv unreadable")

type FileLoader struct {
	Path string
}

// Load reads the whole file. The first record is a header and is
// skipped. Rows missing any of the three fields are dropped silently;
// only an unreadable or unparsable file is an error.
func (l FileLoader) Load() ([]model.RawRow, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var rows []model.RawRow
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 3 || rec[0] == "" || rec[1] == "" || rec[2] == "" {
			continue
		}
		rows = append(rows, model.RawRow{Name: rec[0], Aaroha: rec[1], Avaroha: rec[2]})
	}
	return rows, nil
}
