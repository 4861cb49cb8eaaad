package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar period: a day, a week starting on Monday, a month, a
// quarter or a year.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// ParsePeriod parses a period name, like "month" or "monthly".
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q want day, week, month, quarter or year", p)
	}
}

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Weekly:
		offset := (int(d.Weekday()) + 6) % 7 // days since monday
		return d.Add(-offset)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, (d.m-1)/3*3+1, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		return d
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		// day 0 of the next quarter's first month.
		return New(d.y, (d.m-1)/3*3+4, 0)
	case Yearly:
		return New(d.y+1, time.January, 0)
	default:
		return d
	}
}

// Range is an inclusive range of dates.
type Range struct {
	From, To Date
	period   Period
}

// NewRange returns the period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period), period: period}
}

// Contains reports whether d is in the range, boundaries included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// String identifies the range, like "2024-03" for a month or "2024-Q1" for a quarter.
func (r Range) String() string {
	switch r.period {
	case Daily:
		if r.From != r.To {
			return fmt.Sprintf("%s_%s", r.From, r.To)
		}
		return r.From.String()
	case Weekly:
		year, week := r.From.time().ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.time().Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return fmt.Sprintf("%d", r.From.Year())
	default:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
}
