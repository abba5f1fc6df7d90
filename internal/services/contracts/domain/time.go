package domain

import (
	"fmt"
	"time"
)

// isoLayouts are the accepted ISO 8601 shapes, full timestamps down to bare dates
// zoneless inputs are interpreted as UTC
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISOTime parses s strictly as ISO 8601 and rejects everything else
func ParseISOTime(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a valid ISO 8601 date", s)
}
