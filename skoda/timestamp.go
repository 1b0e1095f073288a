package skoda

import (
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is the local date-time format of every timestamp the API
// returns. Seconds may be omitted, and a fraction of up to nine digits may
// follow them after a '.'. Zone offsets are rejected.
const TimestampLayout = "2006-01-02T15:04:05"

const timestampMinuteLayout = "2006-01-02T15:04"

var localDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}(:\d{2}(\.\d{1,9})?)?$`)

func parseTimestamp(name, value string) (time.Time, error) {
	match := localDateTime.FindStringSubmatch(value)
	if match == nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: not an ISO local date-time", name, value)
	}

	layout := TimestampLayout
	if match[1] == "" {
		layout = timestampMinuteLayout
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return t, nil
}

// timestamps parses a batch of named stamps, stopping at the first bad one.
type timestamps struct {
	err error
}

func (ts *timestamps) parse(name, value string) time.Time {
	if ts.err != nil {
		return time.Time{}
	}
	t, err := parseTimestamp(name, value)
	if err != nil {
		ts.err = err
	}
	return t
}
