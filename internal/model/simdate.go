package model

import "fmt"

// monthsPerYear and daysPerMonth define the simplified simulation calendar:
// twelve named months of exactly 28 days. Date arithmetic rolls over at the
// 28-day boundary. This is an intentional simplification of the real
// calendar, not a defect.
const (
	monthsPerYear = 12
	daysPerMonth  = 28
)

var monthNames = [monthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// SimDate is a date on the simplified simulation calendar.
type SimDate struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
	Day   int `json:"day"`   // 1-28
}

// SimStart is the fixed calendar date every simulation begins on.
var SimStart = SimDate{Year: 1, Month: 1, Day: 1}

// AddDays returns the date n days later, rolling months at day 28 and years
// at month 12.
func (d SimDate) AddDays(n int) SimDate {
	d.Day += n
	for d.Day > daysPerMonth {
		d.Day -= daysPerMonth
		d.Month++
		if d.Month > monthsPerYear {
			d.Month = 1
			d.Year++
		}
	}
	return d
}

// Compare returns -1, 0, or 1 as d is before, equal to, or after other.
func (d SimDate) Compare(other SimDate) int {
	a := d.ordinal()
	b := other.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (d SimDate) ordinal() int {
	return (d.Year*monthsPerYear+(d.Month-1))*daysPerMonth + d.Day
}

// Long renders the date in long form, e.g. "March 14, Year 2".
func (d SimDate) Long() string {
	month := "January"
	if d.Month >= 1 && d.Month <= monthsPerYear {
		month = monthNames[d.Month-1]
	}
	return fmt.Sprintf("%s %d, Year %d", month, d.Day, d.Year)
}

// String renders the date in sortable short form, e.g. "Y1-03-14".
func (d SimDate) String() string {
	return fmt.Sprintf("Y%d-%02d-%02d", d.Year, d.Month, d.Day)
}
