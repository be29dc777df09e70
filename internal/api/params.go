package api

import "time"

// Wire formats for dates: inputs arrive as YYYY-MM-DD, responses carry the
// human-readable form (e.g. "Sun Jan 01 2023").
const (
	inputDateLayout   = "2006-01-02"
	displayDateLayout = "Mon Jan 02 2006"
)

// parseInputDate parses a YYYY-MM-DD string into a UTC date.
func parseInputDate(value string) (time.Time, error) {
	t, err := time.Parse(inputDateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// formatDisplayDate renders a stored date for responses.
func formatDisplayDate(t time.Time) string {
	return t.UTC().Format(displayDateLayout)
}
