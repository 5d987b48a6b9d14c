package effectmodel

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Since returns the span between start and now.
func Since(start time.Time) TimeSpan {
	return timespan.BetweenTimes(start, time.Now())
}
