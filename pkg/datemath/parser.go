package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe   = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	viDurationRe   = regexp.MustCompile(`(\d+) (ngày|tuần|tháng) (nữa|tới)`)
	lastNDaysRe    = regexp.MustCompile(`(?:last|past) (\d+) days?|(\d+) ngày (?:qua|gần đây)`)
	dayAliases     = map[string]int{"today": 0, "hôm nay": 0, "tomorrow": 1, "ngày mai": 1, "yesterday": -1, "hôm qua": -1}
	weekdayAliases = map[string]time.Weekday{
		"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
		"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday, "sunday": time.Sunday,
		"thứ hai": time.Monday, "thứ ba": time.Tuesday, "thứ tư": time.Wednesday,
		"thứ năm": time.Thursday, "thứ sáu": time.Friday, "thứ bảy": time.Saturday, "chủ nhật": time.Sunday,
	}
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if offset, ok := dayAliases[relative]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, offset)), nil
	}

	// Handle "in X days/weeks/months" and "X ngày nữa"
	if strings.HasPrefix(relative, "in ") || viDurationRe.MatchString(relative) {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>" and "<thứ> tới"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	}
	if strings.HasSuffix(relative, " tới") {
		return p.parseNextWeekday(strings.TrimSuffix(relative, " tới"), baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "3 ngày nữa".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	var amountStr, unit string
	if m := inDurationRe.FindStringSubmatch(relative); len(m) == 3 {
		amountStr, unit = m[1], m[2]
	} else if m := viDurationRe.FindStringSubmatch(relative); len(m) == 4 {
		amountStr, unit = m[1], m[2]
	} else {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(amountStr)

	switch {
	case strings.HasPrefix(unit, "day"), unit == "ngày":
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"), unit == "tuần":
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"), unit == "tháng":
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles "monday" of "next monday" and "thứ hai" of "thứ hai tới".
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdayAliases[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
