package exporters

import "github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"

type DayExporter interface {
	Export(days []entities.Day) (ExportResult, error)
}

type ExportResult struct {
	NotesProcessed   int `json:"notes_processed"`
	EntriesProcessed int `json:"entries_processed"`
	NotesSkipped     int `json:"notes_skipped"`
	NotesFailed      int `json:"notes_failed"`
}
