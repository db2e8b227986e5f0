package daylio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/moods"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"08:00", 8 * 60, true},
		{"8:00", 8 * 60, true},
		{"20:00", 20 * 60, true},
		{"23:59", 23*60 + 59, true},
		{"0:00", 0, true},
		{"10:16 PM", 22*60 + 16, true},
		{"10:16 AM", 10*60 + 16, true},
		{"12:30 AM", 30, true},
		{"12:30 PM", 12*60 + 30, true},
		{" 11:05 ", 11*60 + 5, true},
		{"24:00", 0, false},
		{"13:00 PM", 0, false},
		{"10:60", 0, false},
		{"10", 0, false},
		{"half past nine", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			minutes, ok := ParseClock(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.minutes, minutes)
			}
		})
	}
}

func validRow() Row {
	return Row{
		Line:       2,
		FullDate:   "2023-01-01",
		Time:       "08:00",
		Mood:       "good",
		Activities: "reading | board games",
		NoteTitle:  "Lazy Sunday",
		Note:       "Stayed in with a book.",
	}
}

func TestParseEntry(t *testing.T) {
	opts := DefaultOptions()

	t.Run("builds a full entry from a valid row", func(t *testing.T) {
		entry, rowErr := ParseEntry(validRow(), opts)
		require.Nil(t, rowErr)

		assert.Equal(t, "2023-01-01", entry.Date)
		assert.Equal(t, "08:00", entry.Time)
		assert.Equal(t, 8*60, entry.TimeMinutes)
		assert.True(t, entry.HasTime())
		assert.Equal(t, "good", entry.Mood)
		assert.Equal(t, []string{"reading", "board-games"}, entry.Activities)
		assert.Equal(t, "Lazy Sunday", entry.NoteTitle)
		assert.Equal(t, "Stayed in with a book.", entry.Note)
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		row := validRow()
		row.FullDate = "January 1st, 2023"

		_, rowErr := ParseEntry(row, opts)
		require.NotNil(t, rowErr)
		assert.Equal(t, ReasonInvalidDate, rowErr.Reason)
		assert.Equal(t, "January 1st, 2023", rowErr.Value)
		assert.Equal(t, 2, rowErr.Line)
	})

	t.Run("rejects an out-of-range date", func(t *testing.T) {
		row := validRow()
		row.FullDate = "2023-13-01"

		_, rowErr := ParseEntry(row, opts)
		require.NotNil(t, rowErr)
		assert.Equal(t, ReasonInvalidDate, rowErr.Reason)
	})

	t.Run("accepts a custom date format", func(t *testing.T) {
		row := validRow()
		row.FullDate = "01/01/2023"

		custom := opts
		custom.DateFormat = "02/01/2006"

		entry, rowErr := ParseEntry(row, custom)
		require.Nil(t, rowErr)
		assert.Equal(t, "2023-01-01", entry.Date, "dates are normalized for grouping and filenames")
	})

	t.Run("treats a missing time as untimed, not invalid", func(t *testing.T) {
		row := validRow()
		row.Time = ""

		entry, rowErr := ParseEntry(row, opts)
		require.Nil(t, rowErr)
		assert.False(t, entry.HasTime())
		assert.Equal(t, entities.NoTime, entry.TimeMinutes)
		assert.Empty(t, entry.Time)
	})

	t.Run("rejects a present but invalid time", func(t *testing.T) {
		row := validRow()
		row.Time = "25:99"

		_, rowErr := ParseEntry(row, opts)
		require.NotNil(t, rowErr)
		assert.Equal(t, ReasonInvalidTime, rowErr.Reason)
	})

	t.Run("rejects a mood outside the vocabulary", func(t *testing.T) {
		row := validRow()
		row.Mood = "flabbergasted"

		_, rowErr := ParseEntry(row, opts)
		require.NotNil(t, rowErr)
		assert.Equal(t, ReasonUnknownMood, rowErr.Reason)
		assert.Equal(t, "flabbergasted", rowErr.Value)
	})

	t.Run("rejects an empty mood", func(t *testing.T) {
		row := validRow()
		row.Mood = "  "

		_, rowErr := ParseEntry(row, opts)
		require.NotNil(t, rowErr)
		assert.Equal(t, ReasonUnknownMood, rowErr.Reason)
	})

	t.Run("accepts moods from a custom vocabulary", func(t *testing.T) {
		row := validRow()
		row.Mood = "amazing"

		custom := opts
		custom.Moods = moods.Set{
			"rad":     {"rad", "amazing"},
			"good":    {"good"},
			"neutral": {"neutral"},
			"bad":     {"bad"},
			"awful":   {"awful"},
		}

		entry, rowErr := ParseEntry(row, custom)
		require.Nil(t, rowErr)
		assert.Equal(t, "amazing", entry.Mood)
	})

	t.Run("empty activities cell yields no activities", func(t *testing.T) {
		row := validRow()
		row.Activities = "  "

		entry, rowErr := ParseEntry(row, opts)
		require.Nil(t, rowErr)
		assert.Empty(t, entry.Activities)
	})

	t.Run("drops empty labels between delimiters", func(t *testing.T) {
		row := validRow()
		row.Activities = "reading | | chess"

		entry, rowErr := ParseEntry(row, opts)
		require.Nil(t, rowErr)
		assert.Equal(t, []string{"reading", "chess"}, entry.Activities)
	})
}
