package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(id string) RenderRecord {
	return RenderRecord{
		RenderID:        id,
		Time:            time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Category:        "stocks",
		Symbols:         "AAPL,MSFT",
		Interval:        "daily",
		Start:           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:             time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SymbolsWithData: 2,
		Warnings:        1,
		ElapsedMS:       42,
	}
}

func TestCSVJournalRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renders.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)

	require.NoError(t, j.RecordRender(testRecord("01ABC")))
	require.NoError(t, j.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "render_id")
	assert.Contains(t, lines[1], "01ABC")
	assert.Contains(t, lines[1], "AAPL,MSFT")
	assert.Contains(t, lines[1], "42")
}

func TestNoopJournal(t *testing.T) {
	j := NewNoop()
	assert.NoError(t, j.RecordRender(testRecord("X")))
	assert.NoError(t, j.Close())
}
