package outwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdeck/internal/contract"
	"stackdeck/schema"
)

func sampleExport() schema.SessionExport {
	return schema.SessionExport{
		User: "sam",
		Date: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Summary: schema.ExportSummary{
			Total:     50,
			Kept:      3,
			Discarded: 47,
		},
		Ranked:    []string{"Principle #1", "Principle #2"},
		Kept:      []string{"Principle #3"},
		Discarded: []string{"Principle #4", "Principle #5"},
	}
}

func TestWriteExportText(t *testing.T) {
	var buf bytes.Buffer
	err := writeExportText(sampleExport(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Session for sam (2026-03-14)")
	assert.Contains(t, out, "Decided 50 principles: 3 kept, 47 discarded")
	assert.Contains(t, out, "1. Principle #1")
	assert.Contains(t, out, "- Principle #3")
	assert.Contains(t, out, "Discarded 2 principles")
}

func TestWriteExportCSV(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "export.csv")
	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: outputFile,
	}

	err := PrintExport(sampleExport(), cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 6) // header + 2 ranked + 1 kept + 2 discarded
	assert.Equal(t, "user,date,bucket,position,text", lines[0])
	assert.Equal(t, "sam,2026-03-14,ranked,1,Principle #1", lines[1])
	assert.Equal(t, "sam,2026-03-14,kept,,Principle #3", lines[3])
	assert.Equal(t, "sam,2026-03-14,discarded,,Principle #4", lines[4])
}

func TestPrintExportParquetUnsupported(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}
	err := PrintExport(sampleExport(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}
