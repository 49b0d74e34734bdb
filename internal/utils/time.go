package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ConvertTo24Hour normalizes a 12-hour display time ("09:30 PM") to 24-hour
// form ("21:30"). Booking forms collect times in the display format; the
// platform expects timestamps.
func ConvertTo24Hour(time12h string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(time12h))
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid 12-hour time %q", time12h)
	}

	modifier := strings.ToUpper(parts[1])
	if modifier != "AM" && modifier != "PM" {
		return "", fmt.Errorf("invalid 12-hour time %q", time12h)
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return "", fmt.Errorf("invalid 12-hour time %q", time12h)
	}

	hours, err := strconv.Atoi(hm[0])
	if err != nil || hours < 1 || hours > 12 {
		return "", fmt.Errorf("invalid hour in %q", time12h)
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("invalid minutes in %q", time12h)
	}

	if hours == 12 {
		hours = 0
	}
	if modifier == "PM" {
		hours += 12
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// CombineDateTime joins a YYYY-MM-DD date and a 12-hour display time into a
// single timestamp. A malformed date or time is an error, never a zero
// timestamp: an invalid combination must abort a booking, not submit one.
func CombineDateTime(date, time12h string) (time.Time, error) {
	time24, err := ConvertTo24Hour(time12h)
	if err != nil {
		return time.Time{}, err
	}

	ts, err := time.Parse("2006-01-02T15:04", date+"T"+time24)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return ts, nil
}
