package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	StatusOK        = "ok"
	StatusGenerated = "generated"
	StatusError     = "error"
)

const secondsPerDay = 24 * 60 * 60

var ErrInvalidRange = errors.New("invalid date range")

type SummaryResult struct {
	Status string `json:"status"`
	Text   string `json:"text"`
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange accepts two YYYY-MM-DD dates with start <= end.
func ParseDateRange(start, end string) (DateRange, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	if start == "" || end == "" {
		return DateRange{}, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidRange)
	}

	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: startDate %q is not YYYY-MM-DD", ErrInvalidRange, start)
	}

	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: endDate %q is not YYYY-MM-DD", ErrInvalidRange, end)
	}

	if e.Before(s) {
		return DateRange{}, fmt.Errorf("%w: endDate %s is before startDate %s", ErrInvalidRange, end, start)
	}

	return DateRange{Start: s, End: e}, nil
}

// Days is the inclusive number of calendar days in the range.
func (r DateRange) Days() int {
	return int((DateOf(r.End).Unix()-DateOf(r.Start).Unix())/secondsPerDay) + 1
}

func (r DateRange) String() string {
	return FormatDate(r.Start) + " to " + FormatDate(r.End)
}
