// Package export renders problem logs as downloadable files.
package export

import (
	"encoding/csv"
	"errors"
	"io"
	"time"

	"github.com/limbo/codetrack/pkg/entity"
)

var csvHeader = []string{"Date", "Platform", "Title", "Difficulty", "Topic", "Notes"}

// WriteCSV writes one row per log. Dates are formatted as days in loc.
func WriteCSV(w io.Writer, logs []entity.ProblemLog, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.New("writing csv header error: " + err.Error())
	}
	for _, l := range logs {
		err := cw.Write([]string{
			l.SolvedAt.In(loc).Format(time.DateOnly),
			l.Platform,
			l.Title,
			l.Difficulty,
			l.Topic,
			l.Notes,
		})
		if err != nil {
			return errors.New("writing csv row error: " + err.Error())
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.New("flushing csv error: " + err.Error())
	}
	return nil
}
