package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"stackdeck/internal/contract"
	"stackdeck/internal/parquet"
	"stackdeck/schema"
)

// PrintRankings outputs the aggregate report, dispatching based on the output
// format configured.
func PrintRankings(report schema.AggregateReport, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankingsJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankingsCSV(report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		records := parquet.ConvertRankings(report.Rankings)
		if err := parquet.WriteRankingsParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingsTable(report, cfg, fmtFloat, intFmt, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankingsJSON handles opening the file and calling the JSON writer.
func writeRankingsJSON(report schema.AggregateReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeRankingsCSV handles opening the file and calling the CSV writer.
func writeRankingsCSV(report schema.AggregateReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"rank", "id", "text", "keep_pct", "label", "keep_count", "total_votes", "top5_count", "top5_score"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, st := range report.Rankings {
				row := []string{
					strconv.Itoa(i + 1),
					st.ID,
					st.Text,
					fmtFloat(st.Score),
					contract.GetPlainLabel(st.Score),
					fmt.Sprintf(intFmt, st.KeepCount),
					fmt.Sprintf(intFmt, st.TotalVotes),
					fmt.Sprintf(intFmt, st.Top5Count),
					fmt.Sprintf(intFmt, st.Top5Score),
				}
				if err := csvWriter.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeRankingsTable generates and writes the human-readable table.
func writeRankingsTable(report schema.AggregateReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Principle", "Keep %", "Label", "Top-5 Votes", "Top-5 Score", "Votes"}
	table.Header(headers)

	// 2. Configure alignment for a compact numeric look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxText := GetMaxTableTextWidth(cfg)
	var data [][]string
	for i, st := range report.Rankings {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(st.Text, maxText),
			fmtFloat(st.Score),
			contract.GetColorLabel(st.Score),
			fmt.Sprintf(intFmt, st.Top5Count),
			fmt.Sprintf(intFmt, st.Top5Score),
			fmt.Sprintf(intFmt, st.TotalVotes),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(writer, "\nAggregated %d sessions across %d ranked principles\n",
		report.TotalSessions, len(report.Rankings))
	return nil
}
