// Package importers provides the pipeline that turns a mood-tracker
// export into per-day vault notes.
//
// # Architecture
//
// The import pipeline follows a simple flow:
//
//	Source Data → Converter → entities.Entry → GroupByDay → entities.Day → NoteExporter → Vault
//
// Each import source implements the Converter interface, which validates
// source-specific rows into the common Entry format and reports rejected
// rows as RowErrors. The Pipeline then groups entries by calendar day and
// exports one note per day using the configured NoteExporter.
//
// Rejections are row-local by design: a malformed row, an unparseable
// date or an unknown mood skips that row and is counted in the
// ImportResult, but never aborts the run.
//
// # Adding a New Import Source
//
// To add support for a new journal source (e.g. a different tracker app):
//
//  1. Create a new file for it in this package.
//
//  2. Parse the source format into validated entities.Entry values, tagging
//     rejected rows with the daylio.RowError taxonomy.
//
//  3. Implement the Converter interface and add a compile-time check:
//
//     var _ Converter = (*MyConverter)(nil)
//
//  4. Feed it to Pipeline.Import() from a CLI command.
//
// For entries that already live in the local database (the vault-sync
// scheduler), use Pipeline.ImportDays() directly instead of implementing
// a Converter.
//
// # Example Usage
//
//	pipeline := importers.NewPipeline(exporter)
//
//	rows, parseErrs, err := daylio.ParseCSV(file)
//	// handle fatal err
//	converter := importers.NewDaylioConverter(rows, parseErrs, opts, path)
//	result, err := pipeline.Import(converter)
package importers
