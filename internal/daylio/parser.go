// Package daylio parses Daylio mood-tracker CSV exports into validated
// journal entries.
package daylio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row represents a single data row from a Daylio CSV export.
// Fields are raw strings, exactly as they appeared in the file
// (the csv layer already strips quoting).
type Row struct {
	Line       int // 1-based line number in the source file
	FullDate   string
	Date       string // redundant short date column, unused for grouping
	Weekday    string
	Time       string
	Mood       string
	Activities string
	NoteTitle  string
	Note       string
}

// requiredHeaders are the columns a Daylio export must carry. The short
// "date" and "weekday" columns are decorative and tolerated if absent.
var requiredHeaders = []string{"full_date", "time", "mood", "activities", "note_title", "note"}

// ParseCSV reads a Daylio CSV export. The first row must be the header.
// Structural problems in individual rows (wrong field count, unbalanced
// quoting) are collected as MalformedRow errors and parsing continues;
// only an unreadable or schema-incomplete header is fatal.
func ParseCSV(r io.Reader) ([]Row, []RowError, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, h := range requiredHeaders {
		if _, ok := headerIndex[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var rows []Row
	var rowErrs []RowError
	lineNum := 1 // the header was line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: lineNum, Reason: ReasonMalformedRow, Value: err.Error()})
			continue
		}

		rows = append(rows, Row{
			Line:       lineNum,
			FullDate:   getColumn(record, headerIndex, "full_date"),
			Date:       getColumn(record, headerIndex, "date"),
			Weekday:    getColumn(record, headerIndex, "weekday"),
			Time:       getColumn(record, headerIndex, "time"),
			Mood:       getColumn(record, headerIndex, "mood"),
			Activities: getColumn(record, headerIndex, "activities"),
			NoteTitle:  getColumn(record, headerIndex, "note_title"),
			Note:       getColumn(record, headerIndex, "note"),
		})
	}

	return rows, rowErrs, nil
}

func getColumn(record []string, headerIndex map[string]int, header string) string {
	if idx, ok := headerIndex[header]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
