package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRun is the CSV shape of a Run.
type csvRun struct {
	ID         string `csv:"id"`
	GameID     string `csv:"game_id"`
	Score      int    `csv:"score"`
	Dodged     int    `csv:"dodged"`
	Bonuses    int    `csv:"bonuses"`
	DurationMS int64  `csv:"duration_ms"`
	CreatedAt  string `csv:"created_at"`
}

// WriteRunsCSV writes runs as CSV with a header row.
func WriteRunsCSV(w io.Writer, runs []Run) error {
	rows := make([]*csvRun, 0, len(runs))
	for _, r := range runs {
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, &csvRun{
			ID:         r.ID,
			GameID:     r.GameID,
			Score:      r.Score,
			Dodged:     r.Dodged,
			Bonuses:    r.Bonuses,
			DurationMS: r.DurationMS,
			CreatedAt:  created,
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return nil
}
