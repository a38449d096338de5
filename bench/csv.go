package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// csvHeader is the column layout of WriteCSV, one row per Row.
var csvHeader = []string{"n", "p", "algo", "rep", "clique_size", "elapsed_ms", "events", "timed_out"}

// WriteCSV renders rows with a header line. Elapsed time is reported in
// milliseconds with microsecond precision so sub-millisecond runs stay
// distinguishable.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: write csv header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.N),
			strconv.FormatFloat(r.P, 'g', -1, 64),
			r.Algo.String(),
			strconv.Itoa(r.Rep),
			strconv.Itoa(r.CliqueSize),
			strconv.FormatFloat(float64(r.Elapsed)/float64(time.Millisecond), 'f', 3, 64),
			strconv.Itoa(r.Events),
			strconv.FormatBool(r.TimedOut),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("bench: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("bench: flush csv: %w", err)
	}

	return nil
}

// WriteCSVFile creates path (truncating any previous content) and writes
// the rows there.
func WriteCSVFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("bench: close %s: %w", path, err)
	}

	return nil
}
