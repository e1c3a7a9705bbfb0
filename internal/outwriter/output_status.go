package outwriter

import (
	"fmt"
	"io"

	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// PrintStoreStatus outputs local session store status.
func PrintStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		fmt.Fprintf(w, "Backend:          %s\n", status.Backend)
		fmt.Fprintf(w, "Connected:        %t\n", status.Connected)
		fmt.Fprintf(w, "Stored sessions:  %d\n", status.TotalSessions)
		if status.LastActiveUser != "" {
			fmt.Fprintf(w, "Last active user: %s\n", status.LastActiveUser)
		}
		if !status.LastUpdated.IsZero() {
			fmt.Fprintf(w, "Last updated:     %s\n", status.LastUpdated.Format("2006-01-02 15:04:05"))
		}
		return nil
	}, "Wrote status")
}

// PrintResultsStatus outputs remote results store status.
func PrintResultsStatus(status schema.ResultsStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		fmt.Fprintf(w, "Connected:       %t\n", status.Connected)
		fmt.Fprintf(w, "Submitted rows:  %d\n", status.TotalRows)
		if !status.LastRow.IsZero() {
			fmt.Fprintf(w, "Last submission: %s\n", status.LastRow.Format("2006-01-02 15:04:05"))
		}
		return nil
	}, "Wrote status")
}
