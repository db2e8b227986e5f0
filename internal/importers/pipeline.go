package importers

import (
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/daylio"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/exporters"
)

// Source provides metadata about where the imported entries came from.
type Source struct {
	Name     string
	FilePath string
}

// Converter turns source-specific data into validated journal entries.
// Rejected rows come back as RowErrors alongside the accepted entries;
// a converter never fails as a whole.
//
// Implementations:
//   - daylio.Converter via NewDaylioConverter (daylio.go) - Daylio CSV export format
type Converter interface {
	Convert() ([]entities.Entry, []daylio.RowError, Source)
}

// NoteExporter persists rendered day notes.
type NoteExporter interface {
	Export(days []entities.Day) (exporters.ExportResult, error)
}

// ImportResult summarizes one pipeline run: what was accepted, what was
// skipped and why, and what ended up on disk.
type ImportResult struct {
	Source          Source
	EntriesAccepted int
	RowsSkipped     int
	SkippedRows     []daylio.RowError
	DaysGrouped     int
	NotesWritten    int
	NotesSkipped    int
	NotesFailed     int
}

// Pipeline handles the common import workflow:
// parse -> validate -> group by day -> render -> write.
//
// Processing is best-effort: invalid rows are collected into the result,
// never fatal. An empty or entirely invalid input completes normally with
// zero notes written.
type Pipeline struct {
	exporter NoteExporter
}

// NewPipeline creates an import pipeline with the given exporter.
// A nil exporter turns the pipeline into a dry run: rows are parsed,
// validated and grouped, but nothing is written.
func NewPipeline(exporter NoteExporter) *Pipeline {
	return &Pipeline{exporter: exporter}
}

// Import processes entries from a converter and exports one note per
// calendar day. This is the main entry point for all import operations.
func (p *Pipeline) Import(converter Converter) (ImportResult, error) {
	entries, rowErrs, source := converter.Convert()
	return p.ImportEntries(entries, rowErrs, source)
}

// ImportEntries groups already-converted entries and exports one note per
// calendar day. Use this when the caller also needs the entries
// themselves (e.g. to persist them).
func (p *Pipeline) ImportEntries(entries []entities.Entry, rowErrs []daylio.RowError, source Source) (ImportResult, error) {
	result := ImportResult{
		Source:          source,
		EntriesAccepted: len(entries),
		RowsSkipped:     len(rowErrs),
		SkippedRows:     rowErrs,
	}

	if len(entries) == 0 {
		return result, nil
	}

	days := GroupByDay(entries)
	result.DaysGrouped = len(days)

	if p.exporter == nil {
		return result, nil
	}

	exportResult, err := p.exporter.Export(days)
	if err != nil {
		return result, err
	}

	result.NotesWritten = exportResult.NotesProcessed
	result.NotesSkipped = exportResult.NotesSkipped
	result.NotesFailed = exportResult.NotesFailed

	return result, nil
}

// ImportDays exports pre-grouped days directly. Use this when the entries
// already live in the local database (e.g. the vault-sync scheduler).
func (p *Pipeline) ImportDays(days []entities.Day) (ImportResult, error) {
	result := ImportResult{DaysGrouped: len(days)}
	if len(days) == 0 || p.exporter == nil {
		return result, nil
	}

	for _, day := range days {
		result.EntriesAccepted += len(day.Entries)
	}

	exportResult, err := p.exporter.Export(days)
	if err != nil {
		return result, err
	}

	result.NotesWritten = exportResult.NotesProcessed
	result.NotesSkipped = exportResult.NotesSkipped
	result.NotesFailed = exportResult.NotesFailed

	return result, nil
}
