package usecase

import (
	"fmt"
	"strings"
	"time"

	"hr-agent/pkg/datemath"
)

const (
	dateLayout     = datemath.ISODate
	dateTimeLayout = "2006-01-02 15:04:05"
)

// period resolves the reporting range from extras: date_from/date_to, date,
// month (+year), year. ok is false when no period was given.
func (uc *implUseCase) period(extras map[string]any) (datemath.Range, bool) {
	loc := uc.dates.Location()
	from, okFrom := parseDate(toString(extras["date_from"]), loc)
	to, okTo := parseDate(toString(extras["date_to"]), loc)
	switch {
	case okFrom && okTo:
		return uc.dates.Between(from, to), true
	case okFrom:
		return datemath.Range{From: from, To: uc.today().AddDate(100, 0, 0)}, true
	case okTo:
		return datemath.Range{From: time.Time{}, To: to.AddDate(0, 0, 1)}, true
	}

	if d, ok := parseDate(toString(extras["date"]), loc); ok {
		return uc.dates.Day(d), true
	}

	now := uc.now().In(loc)
	year, hasYear := toInt64(extras["year"])
	if !hasYear {
		year = int64(now.Year())
	}
	if month, ok := toInt64(extras["month"]); ok && month >= 1 && month <= 12 {
		return uc.dates.Month(int(year), time.Month(month)), true
	}
	if hasYear {
		return uc.dates.Year(int(year)), true
	}
	return datemath.Range{}, false
}

// inRange reports whether a date or datetime string falls in r.
func inRange(value string, r datemath.Range) bool {
	if len(value) < len(dateLayout) {
		return false
	}
	day := value[:len(dateLayout)]
	return day >= r.FromString() && day < r.ToString()
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(dateLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, s[:len(dateLayout)], loc)
	return t, err == nil
}

// daysBetween counts calendar days from..to inclusive, 0 when unknown.
func daysBetween(from, to string) float64 {
	f, okF := parseDate(from, time.UTC)
	t, okT := parseDate(to, time.UTC)
	if !okF || !okT || t.Before(f) {
		return 0
	}
	return t.Sub(f).Hours()/24 + 1
}

func timeIn(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{dateTimeLayout, time.RFC3339, "2006-01-02T15:04:05", dateLayout} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}
