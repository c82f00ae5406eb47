package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
)

// WriteRankedFiles outputs per-file ranking results, dispatching based on the output format configured.
func WriteRankedFiles(files []schema.RankedFile, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, schema.EnrichRankedFiles(files))
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankedFilesCSV(w, files)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankedFilesTable(files, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankedFilesTable generates and writes the human-readable table.
func writeRankedFilesTable(files []schema.RankedFile, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Path", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "LOC", "Fns", "Cx", "MaxCx", "Unsafe", "Panics")
	}
	table.Header(headers)

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, f := range files {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(f.Path, getMaxTablePathWidth(cfg)),
			fmtScore(f.Score),
			labelFor(f.Score, cfg),
		}
		if cfg.Detail {
			row = append(
				row,
				strconv.Itoa(f.LinesOfCode),
				strconv.Itoa(f.NumFunctions),
				strconv.Itoa(f.TotalComplexity),
				strconv.Itoa(f.MaxComplexity),
				strconv.Itoa(f.UnsafeCodeBlocks),
				strconv.Itoa(f.PanicCalls),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalLOC := 0
	totalFns := 0
	for _, f := range files {
		totalLOC += f.LinesOfCode
		totalFns += f.NumFunctions
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d files (total loc: %d, total functions: %d)\n", len(files), totalLOC, totalFns); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeRankedFilesCSV writes the ranking results in CSV format.
func writeRankedFilesCSV(w io.Writer, files []schema.RankedFile) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{
		"rank",
		"file",
		"score",
		"label",
		"loc",
		"functions",
		"total_complexity",
		"max_complexity",
		"unsafe_blocks",
		"panic_calls",
	}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, f := range files {
		rec := []string{
			strconv.Itoa(i + 1),
			f.Path,
			fmtScore(f.Score),
			schema.GetPlainLabel(f.Score),
			strconv.Itoa(f.LinesOfCode),
			strconv.Itoa(f.NumFunctions),
			strconv.Itoa(f.TotalComplexity),
			strconv.Itoa(f.MaxComplexity),
			strconv.Itoa(f.UnsafeCodeBlocks),
			strconv.Itoa(f.PanicCalls),
		}
		if err := csvWriter.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
