package importers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/daylio"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/exporters"
)

// recordingExporter captures the days handed to it instead of writing
// files.
type recordingExporter struct {
	days []entities.Day
}

func (r *recordingExporter) Export(days []entities.Day) (exporters.ExportResult, error) {
	r.days = days
	result := exporters.ExportResult{NotesProcessed: len(days)}
	for _, day := range days {
		result.EntriesProcessed += len(day.Entries)
	}
	return result, nil
}

func convertCSV(t *testing.T, input string) *DaylioConverter {
	t.Helper()
	rows, parseErrs, err := daylio.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	return NewDaylioConverter(rows, parseErrs, daylio.DefaultOptions(), "export.csv")
}

const header = "full_date,date,weekday,time,mood,activities,note_title,note\n"

func TestPipelineImport(t *testing.T) {
	t.Run("one day with two entries becomes one note in time order", func(t *testing.T) {
		converter := convertCSV(t, header+
			`2023-01-01,January 1,Sunday,20:00,bad,"",,""`+"\n"+
			`2023-01-01,January 1,Sunday,08:00,good,"reading",,""`+"\n")

		exporter := &recordingExporter{}
		result, err := NewPipeline(exporter).Import(converter)
		require.NoError(t, err)

		assert.Equal(t, 2, result.EntriesAccepted)
		assert.Equal(t, 0, result.RowsSkipped)
		assert.Equal(t, 1, result.DaysGrouped)
		assert.Equal(t, 1, result.NotesWritten)
		assert.Equal(t, "daylio", result.Source.Name)

		require.Len(t, exporter.days, 1)
		day := exporter.days[0]
		assert.Equal(t, "2023-01-01", day.Date)
		require.Len(t, day.Entries, 2)
		assert.Equal(t, "08:00", day.Entries[0].Time)
		assert.Equal(t, "20:00", day.Entries[1].Time)
	})

	t.Run("invalid rows are skipped and counted, never fatal", func(t *testing.T) {
		converter := convertCSV(t, header+
			`not-a-date,January 1,Sunday,08:00,good,"",,""`+"\n"+
			`2023-01-01,January 1,Sunday,09:00,confused,"",,""`+"\n"+
			`2023-01-01,January 1,Sunday,10:00,good,"",,""`+"\n")

		exporter := &recordingExporter{}
		result, err := NewPipeline(exporter).Import(converter)
		require.NoError(t, err)

		assert.Equal(t, 1, result.EntriesAccepted)
		assert.Equal(t, 2, result.RowsSkipped)
		require.Len(t, result.SkippedRows, 2)
		assert.Equal(t, daylio.ReasonInvalidDate, result.SkippedRows[0].Reason)
		assert.Equal(t, daylio.ReasonUnknownMood, result.SkippedRows[1].Reason)

		require.Len(t, exporter.days, 1)
		require.Len(t, exporter.days[0].Entries, 1)
		assert.Equal(t, "10:00", exporter.days[0].Entries[0].Time, "rejected rows never reach a bucket")
	})

	t.Run("structural parse errors land in the same summary", func(t *testing.T) {
		converter := convertCSV(t, header+
			"2023-01-01,January 1,Sunday,08:00,good\n"+ // wrong field count
			`2023-01-02,January 2,Monday,09:00,good,"",,""`+"\n")

		result, err := NewPipeline(&recordingExporter{}).Import(converter)
		require.NoError(t, err)

		assert.Equal(t, 1, result.EntriesAccepted)
		assert.Equal(t, 1, result.RowsSkipped)
		require.Len(t, result.SkippedRows, 1)
		assert.Equal(t, daylio.ReasonMalformedRow, result.SkippedRows[0].Reason)
	})

	t.Run("header-only input completes with zero notes", func(t *testing.T) {
		converter := convertCSV(t, header)

		exporter := &recordingExporter{}
		result, err := NewPipeline(exporter).Import(converter)
		require.NoError(t, err)

		assert.Equal(t, 0, result.EntriesAccepted)
		assert.Equal(t, 0, result.NotesWritten)
		assert.Empty(t, exporter.days, "nothing is exported for an empty input")
	})

	t.Run("entirely invalid input completes with a populated summary", func(t *testing.T) {
		converter := convertCSV(t, header+
			`nope,January 1,Sunday,08:00,good,"",,""`+"\n"+
			`also nope,January 1,Sunday,09:00,good,"",,""`+"\n")

		result, err := NewPipeline(&recordingExporter{}).Import(converter)
		require.NoError(t, err)

		assert.Equal(t, 0, result.EntriesAccepted)
		assert.Equal(t, 2, result.RowsSkipped)
		assert.Equal(t, 0, result.NotesWritten)
	})

	t.Run("nil exporter dry-runs the pipeline", func(t *testing.T) {
		converter := convertCSV(t, header+
			`2023-01-01,January 1,Sunday,08:00,good,"",,""`+"\n")

		result, err := NewPipeline(nil).Import(converter)
		require.NoError(t, err)

		assert.Equal(t, 1, result.EntriesAccepted)
		assert.Equal(t, 1, result.DaysGrouped)
		assert.Equal(t, 0, result.NotesWritten)
	})
}

func TestPipelineImportDays(t *testing.T) {
	days := []entities.Day{
		{Date: "2023-01-01", Entries: []entities.Entry{timedEntry("2023-01-01", "08:00", 8*60, "good")}},
		{Date: "2023-01-02", Entries: []entities.Entry{timedEntry("2023-01-02", "09:00", 9*60, "rad")}},
	}

	exporter := &recordingExporter{}
	result, err := NewPipeline(exporter).ImportDays(days)
	require.NoError(t, err)

	assert.Equal(t, 2, result.DaysGrouped)
	assert.Equal(t, 2, result.EntriesAccepted)
	assert.Equal(t, 2, result.NotesWritten)
	assert.Len(t, exporter.days, 2)
}
