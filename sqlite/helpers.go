package sqlite

import (
	"fmt"
	"time"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// formatRFC3339 formats t in UTC with sub-second precision so values
// round-trip through parseRFC3339.
func formatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
