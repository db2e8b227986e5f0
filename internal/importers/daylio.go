package importers

import (
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/daylio"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
)

// DaylioConverter validates raw Daylio CSV rows into journal entries.
type DaylioConverter struct {
	Rows     []daylio.Row
	Options  daylio.Options
	FilePath string

	// ParseErrors carries structural errors from the CSV layer so they
	// land in the same summary as validation failures.
	ParseErrors []daylio.RowError
}

// NewDaylioConverter creates a converter for rows produced by
// daylio.ParseCSV.
func NewDaylioConverter(rows []daylio.Row, parseErrs []daylio.RowError, opts daylio.Options, filePath string) *DaylioConverter {
	return &DaylioConverter{
		Rows:        rows,
		Options:     opts,
		FilePath:    filePath,
		ParseErrors: parseErrs,
	}
}

// Convert implements Converter. Validation short-circuits per row: the
// first bad field rejects the row, and conversion moves on to the next.
func (c *DaylioConverter) Convert() ([]entities.Entry, []daylio.RowError, Source) {
	entries := make([]entities.Entry, 0, len(c.Rows))
	rowErrs := append([]daylio.RowError(nil), c.ParseErrors...)

	for _, row := range c.Rows {
		entry, rowErr := daylio.ParseEntry(row, c.Options)
		if rowErr != nil {
			rowErrs = append(rowErrs, *rowErr)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, rowErrs, Source{Name: "daylio", FilePath: c.FilePath}
}

// Compile-time interface check
var _ Converter = (*DaylioConverter)(nil)
