// Package export writes the derived views as CSV for download or archival.
package export

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/rustyeddy/marketdash/analysis"
)

// WriteFrameCSV writes an aligned frame as CSV: a date column followed by
// one column per series. Gap cells are left blank, never zero.
func WriteFrameCSV(w io.Writer, frame *analysis.AlignedFrame) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(frame.Columns)+1)
	header = append(header, "date")
	for _, col := range frame.Columns {
		header = append(header, col.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, date := range frame.Dates {
		row[0] = date.Format("2006-01-02")
		for j, col := range frame.Columns {
			row[j+1] = formatCell(col.Values[i])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMatrixCSV writes a correlation matrix as a square CSV table with
// symbol row and column headers.
func WriteMatrixCSV(w io.Writer, m *analysis.CorrelationMatrix) error {
	cw := csv.NewWriter(w)

	header := append([]string{""}, m.Symbols...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, sym := range m.Symbols {
		row := make([]string, 0, len(m.Symbols)+1)
		row = append(row, sym)
		for _, v := range m.Values[i] {
			row = append(row, formatCell(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFrameFile writes the frame CSV to a file path.
func WriteFrameFile(path string, frame *analysis.AlignedFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFrameCSV(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteMatrixFile writes the matrix CSV to a file path.
func WriteMatrixFile(path string, m *analysis.CorrelationMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteMatrixCSV(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
