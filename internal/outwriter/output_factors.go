package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
)

// WriteFactorCatalog outputs the factor catalog, dispatching based on the output format configured.
func WriteFactorCatalog(cfg *contract.Config) error {
	catalog := schema.FactorCatalog()

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, catalogEntries(catalog))
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogCSV(w, catalog)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogTable(w, catalog)
		}, "Wrote table")
	}
	return nil
}

// catalogEntry is the export shape of one catalog row.
type catalogEntry struct {
	Name string `json:"name"`
	schema.FactorInfo
}

func catalogEntries(catalog map[schema.FactorKey]schema.FactorInfo) []catalogEntry {
	entries := make([]catalogEntry, 0, len(schema.CatalogOrder))
	for _, key := range schema.CatalogOrder {
		entries = append(entries, catalogEntry{
			Name:       string(key),
			FactorInfo: catalog[key],
		})
	}
	return entries
}

// writeCatalogTable generates and writes the human-readable catalog.
func writeCatalogTable(w io.Writer, catalog map[schema.FactorKey]schema.FactorInfo) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "Display Name", "Type", "Category", "Description"})

	var data [][]string
	for _, entry := range catalogEntries(catalog) {
		data = append(data, []string{
			entry.Name,
			entry.DisplayName,
			entry.Type,
			entry.Category,
			entry.Description,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Listed %d factors\n", len(data))
	return err
}

// writeCatalogCSV writes the catalog in CSV format.
func writeCatalogCSV(w io.Writer, catalog map[schema.FactorKey]schema.FactorInfo) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"name", "display_name", "type", "category", "description"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, entry := range catalogEntries(catalog) {
		rec := []string{
			entry.Name,
			entry.DisplayName,
			entry.Type,
			entry.Category,
			entry.Description,
		}
		if err := csvWriter.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
