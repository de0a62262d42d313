package meetings

import (
	"fmt"
	"strings"
	"time"
)

// SplitTime is the 12-hour picker representation of a meeting time: a date,
// an hour on the 1-12 dial, a minute, and an AM/PM marker. It converts to
// and from an unambiguous UTC instant.
type SplitTime struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Hour   int    `json:"hour"` // 1..12
	Minute int    `json:"minute"`
	AMPM   string `json:"ampm"` // AM or PM
}

// Instant resolves the split representation to an absolute UTC instant.
// 12 AM maps to hour 0 and 12 PM stays 12.
func (s SplitTime) Instant() (time.Time, error) {
	if s.Hour < 1 || s.Hour > 12 || s.Minute < 0 || s.Minute > 59 {
		return time.Time{}, ErrBadSplitTime
	}

	marker := strings.ToUpper(strings.TrimSpace(s.AMPM))
	if marker != "AM" && marker != "PM" {
		return time.Time{}, ErrBadSplitTime
	}

	day, err := time.ParseInLocation("2006-01-02", s.Date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrBadSplitTime, s.Date)
	}

	hour := s.Hour % 12
	if marker == "PM" {
		hour += 12
	}

	return day.Add(time.Duration(hour)*time.Hour + time.Duration(s.Minute)*time.Minute), nil
}

// Split converts an absolute instant back to the 12-hour representation.
func Split(t time.Time) SplitTime {
	t = t.UTC()

	marker := "AM"
	if t.Hour() >= 12 {
		marker = "PM"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	return SplitTime{
		Date:   t.Format("2006-01-02"),
		Hour:   hour,
		Minute: t.Minute(),
		AMPM:   marker,
	}
}
