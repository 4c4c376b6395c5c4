package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"render_id", "time", "category", "symbols", "interval",
		"start", "end", "symbols_with_data", "warnings", "elapsed_ms",
	}); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordRender(r RenderRecord) error {
	if err := j.w.Write([]string{
		r.RenderID,
		r.Time.Format(time.RFC3339),
		r.Category,
		r.Symbols,
		r.Interval,
		r.Start.Format("2006-01-02"),
		r.End.Format("2006-01-02"),
		strconv.Itoa(r.SymbolsWithData),
		strconv.Itoa(r.Warnings),
		strconv.FormatInt(r.ElapsedMS, 10),
	}); err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	return j.f.Close()
}
