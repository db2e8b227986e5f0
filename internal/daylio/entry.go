package daylio

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/moods"
	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/utils"
)

// CanonicalDateFormat is the layout every accepted date is normalized to.
// Output notes are named after it.
const CanonicalDateFormat = "2006-01-02"

// Options configures row validation. Pass it explicitly so tests can vary
// vocabularies and formats without ambient state.
type Options struct {
	DateFormat        string // Go time layout for the full_date column
	ActivityDelimiter string // secondary delimiter inside the activities column
	Moods             moods.Set
}

// DefaultOptions returns the options matching a stock Daylio export.
func DefaultOptions() Options {
	return Options{
		DateFormat:        CanonicalDateFormat,
		ActivityDelimiter: "|",
		Moods:             moods.Standard(),
	}
}

// Matches HH:MM with an optional AM/PM suffix. Range checks beyond what
// the pattern can express happen in ParseClock.
var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])( AM| PM)?$`)

// ParseClock validates a time-of-day string and converts it to minutes
// since midnight. Accepts both 24-hour ("20:00") and 12-hour ("8:00 PM")
// notation.
func ParseClock(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	switch m[3] {
	case " AM":
		if hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case " PM":
		if hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	}

	return hour*60 + minutes, true
}

// ParseEntry validates one raw row and builds an immutable journal entry
// from it. A single bad field rejects the whole row; the returned RowError
// names the first offending field. Pure function, no side effects.
func ParseEntry(row Row, opts Options) (entities.Entry, *RowError) {
	date, err := time.Parse(opts.DateFormat, strings.TrimSpace(row.FullDate))
	if err != nil {
		return entities.Entry{}, &RowError{Line: row.Line, Reason: ReasonInvalidDate, Value: row.FullDate}
	}

	clock := strings.TrimSpace(row.Time)
	timeMinutes := entities.NoTime
	if clock != "" {
		minutes, ok := ParseClock(clock)
		if !ok {
			return entities.Entry{}, &RowError{Line: row.Line, Reason: ReasonInvalidTime, Value: row.Time}
		}
		timeMinutes = minutes
	}

	mood := strings.TrimSpace(row.Mood)
	if mood == "" || !opts.Moods.Contains(mood) {
		return entities.Entry{}, &RowError{Line: row.Line, Reason: ReasonUnknownMood, Value: row.Mood}
	}

	return entities.Entry{
		Date:        date.Format(CanonicalDateFormat),
		Time:        clock,
		TimeMinutes: timeMinutes,
		Mood:        mood,
		Activities:  splitActivities(row.Activities, opts.ActivityDelimiter),
		NoteTitle:   strings.TrimSpace(row.NoteTitle),
		Note:        row.Note,
	}, nil
}

// splitActivities breaks the activities column on the secondary delimiter
// and slugifies each label. Empty labels are dropped; an empty column
// yields no activities.
func splitActivities(raw, delimiter string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var activities []string
	for _, label := range strings.Split(raw, delimiter) {
		slug := utils.Slugify(label)
		if slug == "" {
			continue
		}
		activities = append(activities, slug)
	}
	return activities
}
