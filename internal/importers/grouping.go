package importers

import (
	"sort"

	"github.com/DeutscheGabanna/Obsidian-Daylio-Parser/internal/entities"
)

// untimedSortKey places entries without a time-of-day after every timed
// entry within a day.
const untimedSortKey = 24 * 60

// GroupByDay buckets validated entries by their calendar date and returns
// the buckets sorted by date, ascending. Within a bucket, timed entries
// come first in ascending clock order; untimed entries follow, keeping
// their relative input order. The sort is stable, so entries sharing the
// same time also keep input order.
func GroupByDay(entries []entities.Entry) []entities.Day {
	dayMap := make(map[string]*entities.Day)

	for _, entry := range entries {
		day, exists := dayMap[entry.Date]
		if !exists {
			day = &entities.Day{Date: entry.Date}
			dayMap[entry.Date] = day
		}
		day.Entries = append(day.Entries, entry)
	}

	dates := make([]string, 0, len(dayMap))
	for date := range dayMap {
		dates = append(dates, date)
	}
	// Dates are normalized to YYYY-MM-DD, so lexicographic order is
	// chronological order.
	sort.Strings(dates)

	days := make([]entities.Day, 0, len(dates))
	for _, date := range dates {
		day := dayMap[date]
		sort.SliceStable(day.Entries, func(i, j int) bool {
			return sortKey(day.Entries[i]) < sortKey(day.Entries[j])
		})
		days = append(days, *day)
	}

	return days
}

func sortKey(e entities.Entry) int {
	if e.HasTime() {
		return e.TimeMinutes
	}
	return untimedSortKey
}
