package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleEntries() []entities.Entry {
	return []entities.Entry{
		{Date: "2023-01-02", Time: "09:00", TimeMinutes: 9 * 60, Mood: "neutral"},
		{Date: "2023-01-01", Time: "20:00", TimeMinutes: 20 * 60, Mood: "bad", Note: "Long day."},
		{Date: "2023-01-01", Time: "08:00", TimeMinutes: 8 * 60, Mood: "good", Activities: []string{"reading"}},
		{Date: "2023-01-01", TimeMinutes: entities.NoTime, Mood: "rad", Note: "No clue when I wrote this."},
	}
}

func TestDatabase(t *testing.T) {
	db := setupTestDB(t)

	t.Run("SaveEntries persists new entries", func(t *testing.T) {
		saved, err := db.SaveEntries(sampleEntries())
		require.NoError(t, err)
		assert.Equal(t, 4, saved)

		count, err := db.CountEntries()
		require.NoError(t, err)
		assert.EqualValues(t, 4, count)
	})

	t.Run("SaveEntries skips duplicates on re-import", func(t *testing.T) {
		saved, err := db.SaveEntries(sampleEntries())
		require.NoError(t, err)
		assert.Equal(t, 0, saved)

		count, err := db.CountEntries()
		require.NoError(t, err)
		assert.EqualValues(t, 4, count)
	})

	t.Run("GetAllEntries returns grouper order", func(t *testing.T) {
		entries, err := db.GetAllEntries()
		require.NoError(t, err)
		require.Len(t, entries, 4)

		assert.Equal(t, "2023-01-01", entries[0].Date)
		assert.Equal(t, "08:00", entries[0].Time)
		assert.Equal(t, "20:00", entries[1].Time)
		assert.False(t, entries[2].HasTime(), "untimed entries come after timed ones within a day")
		assert.Equal(t, "2023-01-02", entries[3].Date)
	})

	t.Run("activities survive the round trip", func(t *testing.T) {
		entries, err := db.GetAllEntries()
		require.NoError(t, err)
		assert.Equal(t, []string{"reading"}, entries[0].Activities)
	})

	t.Run("import sessions are recorded", func(t *testing.T) {
		session := &entities.ImportSession{
			SourceFile:      "export.csv",
			Status:          entities.ImportStatusCompleted,
			EntriesAccepted: 4,
			RowsSkipped:     1,
			NotesWritten:    2,
		}
		require.NoError(t, db.RecordImportSession(session))
		assert.NotZero(t, session.ID)

		sessions, err := db.GetRecentImportSessions(10)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "export.csv", sessions[0].SourceFile)
		assert.Equal(t, entities.ImportStatusCompleted, sessions[0].Status)
	})
}
