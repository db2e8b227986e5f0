package daylio

import "fmt"

// Reason classifies why a CSV row was rejected.
type Reason string

const (
	// ReasonMalformedRow marks structural failures: wrong field count or
	// unbalanced quoting.
	ReasonMalformedRow Reason = "malformed_row"
	// ReasonInvalidDate marks rows whose full_date does not parse under
	// the configured date format.
	ReasonInvalidDate Reason = "invalid_date"
	// ReasonInvalidTime marks rows whose time field is present but is not
	// a valid HH:MM clock (optionally suffixed with AM/PM).
	ReasonInvalidTime Reason = "invalid_time"
	// ReasonUnknownMood marks rows whose mood is empty or not a member of
	// the configured mood vocabulary.
	ReasonUnknownMood Reason = "unknown_mood"
)

// RowError describes a single rejected row. Rejections are row-local:
// the pipeline collects them and keeps going.
type RowError struct {
	Line   int    // 1-based line number in the source file, header included
	Reason Reason
	Value  string // the offending field value, best effort
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s (%q)", e.Line, e.Reason, e.Value)
}
