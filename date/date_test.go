package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2024, time.February, 30)
	want := New(2024, time.March, 1)
	if got != want {
		t.Errorf("New(2024, 2, 30) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2024-01-10", New(2024, time.January, 10), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{" 2025-07-01 ", New(2025, time.July, 1), false},
		{"2025/07/01", Date{}, true},
		{"today", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseInput(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"today", today, false},
		{"Today", today, false},
		{"", today, false},
		{"yesterday", today.Add(-1), false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"-2w", today.Add(-14), false},
		{"-1y", New(today.Year()-1, today.Month(), today.Day()), false},
		{"+1m", New(today.Year(), today.Month()+1, today.Day()), false},
		{"2024-01-10", New(2024, time.January, 10), false},
		{"1d", Date{}, true},
		{"tomorrow", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInput(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseInput(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseInput(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a, b := MustParse("2024-01-10"), MustParse("2024-02-01")
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare(%v, %v) is not consistent", a, b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Errorf("Before/After(%v, %v) is not consistent", a, b)
	}
}
