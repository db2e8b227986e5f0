package entities

import (
	"time"
)

// ImportStatus tracks the outcome of a CSV import session.
type ImportStatus string

const (
	ImportStatusCompleted ImportStatus = "completed"
	ImportStatusFailed    ImportStatus = "failed"
)

// NoTime marks an entry whose export row carried no usable time-of-day.
// Untimed entries sort after timed ones within a day.
const NoTime = -1

// Entry is a single journal entry made at a particular moment in time.
// It is created by the Daylio row validator and never mutated afterwards.
type Entry struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"index;size:10" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:10" json:"time,omitempty"`

	// TimeMinutes is the within-day sort key: minutes since midnight,
	// or NoTime when the entry has no time-of-day.
	TimeMinutes int `gorm:"index" json:"time_minutes"`

	Mood       string   `gorm:"index;size:100" json:"mood"`
	Activities []string `gorm:"serializer:json;type:text" json:"activities,omitempty"`
	NoteTitle  string   `gorm:"type:text" json:"note_title,omitempty"`
	Note       string   `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTime reports whether the entry carries a time-of-day.
func (e Entry) HasTime() bool {
	return e.TimeMinutes != NoTime
}

// Day groups every entry written on one calendar date.
// The grouper guarantees each entry's Date equals the day's Date.
type Day struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Entries []Entry `json:"entries"`
}

// ImportSession records one run of the converter for later inspection.
type ImportSession struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	SourceFile      string       `gorm:"size:1024" json:"source_file"`
	Status          ImportStatus `gorm:"size:20" json:"status"`
	EntriesAccepted int          `json:"entries_accepted"`
	RowsSkipped     int          `json:"rows_skipped"`
	NotesWritten    int          `json:"notes_written"`
	CreatedAt       time.Time    `json:"created_at"`
}
