package fireflies

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
)

// Layouts accepted for datetime range inputs. Offset-less layouts are
// interpreted as UTC.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// NormalizeRange expands the user-supplied range endpoints into UTC instants
// for the transcript query. Date-only inputs widen to the whole day:
// fromDate to start-of-day, toDate to end-of-day. Datetime inputs pass
// through with their instant unchanged.
func NormalizeRange(fromDate, toDate string) (string, string, error) {
	from, err := normalizeEndpoint(fromDate, "T00:00:00Z")
	if err != nil {
		return "", "", apperrors.ErrValidation("Invalid fromDate: " + fromDate)
	}
	to, err := normalizeEndpoint(toDate, "T23:59:59Z")
	if err != nil {
		return "", "", apperrors.ErrValidation("Invalid toDate: " + toDate)
	}
	return from, to, nil
}

func normalizeEndpoint(value, daySuffix string) (string, error) {
	if !strings.Contains(value, "T") {
		t, err := time.Parse(time.RFC3339, value+daySuffix)
		if err != nil {
			return "", err
		}
		return t.UTC().Format(time.RFC3339), nil
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("unrecognized datetime %q", value)
}
