package datemath

import "time"

// ISODate is the layout used for dates exchanged with the Data Service.
const ISODate = "2006-01-02"

// Range is a half-open interval [From, To) of whole days.
type Range struct {
	From time.Time
	To   time.Time
}

// FromString returns the first day of the range as YYYY-MM-DD.
func (r Range) FromString() string { return r.From.Format(ISODate) }

// LastDayString returns the last day inside the range as YYYY-MM-DD.
func (r Range) LastDayString() string { return r.To.AddDate(0, 0, -1).Format(ISODate) }

// ToString returns the exclusive upper bound as YYYY-MM-DD.
func (r Range) ToString() string { return r.To.Format(ISODate) }
