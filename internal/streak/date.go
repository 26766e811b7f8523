package streak

import (
	"errors"
	"strconv"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar day without a time component. The zero value is not a
// valid day.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the day t falls on in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, errors.New("parsing date error: " + err.Error())
	}
	return Date{t: t}, nil
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysSince returns the number of calendar days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.t.Sub(other.t).Hours() / 24)
}

func (d Date) After(other Date) bool { return d.t.After(other.t) }
func (d Date) IsZero() bool          { return d.t.IsZero() }

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return d.t.Format(layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("date must be a quoted string")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DatesFrom truncates timestamps to the days they fall on in loc.
// Duplicates are kept; Compute collapses them.
func DatesFrom(times []time.Time, loc *time.Location) []Date {
	dates := make([]Date, 0, len(times))
	for _, t := range times {
		dates = append(dates, DateOf(t, loc))
	}
	return dates
}
