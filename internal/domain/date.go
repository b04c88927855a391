package domain

import "fmt"

// DatePrecision is the granularity a Date was published with.
type DatePrecision int

const (
	PrecisionYear DatePrecision = iota + 1
	PrecisionMonth
	PrecisionDay
)

func (p DatePrecision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionMonth:
		return "year-month"
	case PrecisionDay:
		return "full-date"
	default:
		return "unknown"
	}
}

// Date is a partial calendar date. Month and Day are 0 when unknown;
// Day is never set without Month.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Precision returns the least precise form that still carries every known part.
func (d Date) Precision() DatePrecision {
	switch {
	case d.Month == 0:
		return PrecisionYear
	case d.Day == 0:
		return PrecisionMonth
	default:
		return PrecisionDay
	}
}

// String renders the ISO-8601 form for the date's precision.
func (d Date) String() string {
	switch d.Precision() {
	case PrecisionYear:
		return fmt.Sprintf("%04d", d.Year)
	case PrecisionMonth:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}
