package timeutil

import (
	"testing"
	"time"
)

func TestFormatDateKey(t *testing.T) {
	d := time.Date(2026, time.March, 7, 15, 42, 0, 0, time.UTC)
	if got := FormatDateKey(d); got != "2026-03-07" {
		t.Fatalf("FormatDateKey: got %q, want 2026-03-07", got)
	}
}

func TestParseDateKey_roundtrip(t *testing.T) {
	d, err := ParseDateKey("2026-01-31")
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	if got := FormatDateKey(d); got != "2026-01-31" {
		t.Fatalf("roundtrip: got %q", got)
	}
}

func TestParseDateKey_malformed(t *testing.T) {
	for _, key := range []string{"", "07.03.2026", "2026-13-01", "tomorrow"} {
		if _, err := ParseDateKey(key); err == nil {
			t.Fatalf("ParseDateKey(%q): expected error", key)
		}
	}
}

func TestNormalizeDateKey(t *testing.T) {
	got, err := NormalizeDateKey("2026-03-07")
	if err != nil {
		t.Fatalf("NormalizeDateKey: %v", err)
	}
	if got != "2026-03-07" {
		t.Fatalf("NormalizeDateKey: got %q", got)
	}

	if _, err := NormalizeDateKey("03/07/2026"); err == nil {
		t.Fatal("NormalizeDateKey: expected error for malformed key")
	}
}

func TestAddDays(t *testing.T) {
	d := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	if got := FormatDateKey(AddDays(d, 1)); got != "2026-03-01" {
		t.Fatalf("AddDays over month boundary: got %q", got)
	}
	if got := FormatDateKey(AddDays(d, -28)); got != "2026-01-31" {
		t.Fatalf("AddDays backwards: got %q", got)
	}
}

func TestAddMinutesToTime(t *testing.T) {
	tests := []struct {
		clock   string
		minutes int
		want    string
	}{
		{"09:00", 60, "10:00"},
		{"10:30", 45, "11:15"},
		{"23:30", 45, "00:15"},
		{"08:05", 0, "08:05"},
	}

	for _, tt := range tests {
		got, err := AddMinutesToTime(tt.clock, tt.minutes)
		if err != nil {
			t.Fatalf("AddMinutesToTime(%q, %d): %v", tt.clock, tt.minutes, err)
		}
		if got != tt.want {
			t.Fatalf("AddMinutesToTime(%q, %d): got %q, want %q", tt.clock, tt.minutes, got, tt.want)
		}
	}
}

func TestAddMinutesToTime_malformed(t *testing.T) {
	if _, err := AddMinutesToTime("9am", 10); err == nil {
		t.Fatal("expected error for malformed clock value")
	}
}

func TestWeekdayLabel(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	if got := WeekdayLabel(monday); got != "Пн" {
		t.Fatalf("WeekdayLabel: got %q, want Пн", got)
	}
	sunday := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := WeekdayLabel(sunday); got != "Вс" {
		t.Fatalf("WeekdayLabel: got %q, want Вс", got)
	}
}
