package utils

import (
	"fmt"
	"time"
)

const PeriodKeyLayout = "2006-01-02"

// PeriodKeyFor returns the snapshot period key for a point in time. One
// snapshot exists per calendar day (UTC).
func PeriodKeyFor(t time.Time) string {
	return t.UTC().Format(PeriodKeyLayout)
}

func ParsePeriodKey(key string) (time.Time, error) {
	t, err := time.Parse(PeriodKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period key %q: expected %s", key, PeriodKeyLayout)
	}
	return t, nil
}
