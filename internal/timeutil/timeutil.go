package timeutil

import (
	"fmt"
	"time"
)

const (
	dateKeyLayout = "2006-01-02"
	clockLayout   = "15:04"
)

var weekdayLabels = [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// FormatDateKey renders t as the canonical YYYY-MM-DD day-key.
func FormatDateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a day-key back into a date at midnight UTC.
func ParseDateKey(key string) (time.Time, error) {
	const op = "timeutil.ParseDateKey"

	t, err := time.Parse(dateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

// NormalizeDateKey canonicalizes any parseable day-key so that one logical day
// never maps to two lookup keys.
func NormalizeDateKey(key string) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}

	return FormatDateKey(t), nil
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddMinutesToTime shifts an HH:mm clock value by the given number of minutes,
// wrapping within the day.
func AddMinutesToTime(clock string, minutes int) (string, error) {
	const op = "timeutil.AddMinutesToTime"

	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return t.Add(time.Duration(minutes) * time.Minute).Format(clockLayout), nil
}

// WeekdayLabel returns the short locale label for the weekday of t.
func WeekdayLabel(t time.Time) string {
	return weekdayLabels[int(t.Weekday())]
}
