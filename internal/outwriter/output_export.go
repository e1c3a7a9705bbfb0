package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// PrintExport outputs a session export artifact, dispatching based on the output
// format configured. The export artifact is JSON-first; the text form is a
// readable recap of the same content.
func PrintExport(export schema.SessionExport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.CSVOut:
		if err := writeExportCSV(export, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for session exports")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExportText(export, w)
		}, "Wrote summary")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, export)
		}, "Wrote JSON")
	}
	return nil
}

// writeExportCSV flattens the export into one row per principle.
func writeExportCSV(export schema.SessionExport, cfg *contract.Config) error {
	header := []string{"user", "date", "bucket", "position", "text"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			date := export.Date.Format("2006-01-02")
			write := func(bucket string, position int, text string) error {
				pos := ""
				if position > 0 {
					pos = fmt.Sprintf("%d", position)
				}
				return csvWriter.Write([]string{export.User, date, bucket, pos, text})
			}
			for i, text := range export.Ranked {
				if err := write("ranked", i+1, text); err != nil {
					return err
				}
			}
			for _, text := range export.Kept {
				if err := write("kept", 0, text); err != nil {
					return err
				}
			}
			for _, text := range export.Discarded {
				if err := write("discarded", 0, text); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeExportText writes the human-readable session recap.
func writeExportText(export schema.SessionExport, w io.Writer) error {
	fmt.Fprintf(w, "Session for %s (%s)\n", export.User, export.Date.Format("2006-01-02"))
	fmt.Fprintf(w, "Decided %d principles: %d kept, %d discarded\n\n",
		export.Summary.Total, export.Summary.Kept, export.Summary.Discarded)

	if len(export.Ranked) > 0 {
		fmt.Fprintln(w, "Top priorities:")
		for i, text := range export.Ranked {
			fmt.Fprintf(w, "  %d. %s\n", i+1, text)
		}
		fmt.Fprintln(w)
	}
	if len(export.Kept) > 0 {
		fmt.Fprintln(w, "Also kept:")
		for _, text := range export.Kept {
			fmt.Fprintf(w, "  - %s\n", text)
		}
		fmt.Fprintln(w)
	}
	if len(export.Discarded) > 0 {
		fmt.Fprintf(w, "Discarded %d principles\n", len(export.Discarded))
	}
	return nil
}
