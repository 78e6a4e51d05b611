package entity

import (
	"fmt"
	"time"

	gerr "github.com/jekabolt/sales-digest/internal/errors"
)

// DateLayout is the calendar date format shared by Shopify filters, GA4 and the report text.
const DateLayout = "2006-01-02"

// JST is the fixed +09:00 offset the shop reports in.
var JST = time.FixedZone("JST", 9*60*60)

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDay returns the single-day range containing t.
func NewDay(t time.Time) DateRange {
	d := startOfDay(t)
	return DateRange{From: d, To: d}
}

// MonthToDate returns the range from the first day of t's month through t.
func MonthToDate(t time.Time) DateRange {
	d := startOfDay(t)
	return DateRange{
		From: time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()),
		To:   d,
	}
}

// ReportWindows derives the report date and both windows from the run start.
// The reference day is the calendar day before now, in now's location.
func ReportWindows(now time.Time) (reportDate time.Time, day, month DateRange) {
	reportDate = startOfDay(now)
	yesterday := time.Date(reportDate.Year(), reportDate.Month(), reportDate.Day()-1, 0, 0, 0, 0, reportDate.Location())
	return reportDate, NewDay(yesterday), MonthToDate(yesterday)
}

func (r DateRange) IsSingleDay() bool {
	return r.From.Equal(r.To)
}

func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return fmt.Errorf("%w: both ends are required", gerr.ErrInvalidRange)
	}
	if r.To.Before(r.From) {
		return fmt.Errorf("%w: %s is after %s", gerr.ErrInvalidRange,
			r.From.Format(DateLayout), r.To.Format(DateLayout))
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
