// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the
// command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRankings prints the aggregate report using the configured output format.
func (ow *OutWriter) WriteRankings(report schema.AggregateReport, cfg *contract.Config) error {
	return PrintRankings(report, cfg)
}

// WriteExport prints a session export using the configured output format.
func (ow *OutWriter) WriteExport(export schema.SessionExport, cfg *contract.Config) error {
	return PrintExport(export, cfg)
}

// WriteStoreStatus prints local session store status.
func (ow *OutWriter) WriteStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return PrintStoreStatus(status, cfg)
}

// WriteResultsStatus prints remote results store status.
func (ow *OutWriter) WriteResultsStatus(status schema.ResultsStatus, cfg *contract.Config) error {
	return PrintResultsStatus(status, cfg)
}

// GetMaxTableTextWidth calculates the maximum width for principle text in
// table output based on terminal width.
func GetMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (rank, keep %, label, top-5
	// counters, votes) plus borders and padding
	baseWidth := 50

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable text width
		return 15
	}
	if available > 70 {
		// Maximum text width to keep rows scannable
		return 70
	}
	return available
}
