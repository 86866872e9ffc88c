package datemath

import (
	"strconv"
	"strings"
	"time"
)

// periodPhrases maps period phrases to a range builder. Longer phrases are
// listed before their prefixes.
var periodPhrases = []struct {
	phrase string
	build  func(p *Parser, base time.Time) Range
}{
	{"tuần trước", func(p *Parser, b time.Time) Range { return p.Week(b.AddDate(0, 0, -7)) }},
	{"last week", func(p *Parser, b time.Time) Range { return p.Week(b.AddDate(0, 0, -7)) }},
	{"tuần này", func(p *Parser, b time.Time) Range { return p.Week(b) }},
	{"this week", func(p *Parser, b time.Time) Range { return p.Week(b) }},
	{"tháng trước", func(p *Parser, b time.Time) Range { return p.monthOf(p.monthOf(b).From.AddDate(0, -1, 0)) }},
	{"last month", func(p *Parser, b time.Time) Range { return p.monthOf(p.monthOf(b).From.AddDate(0, -1, 0)) }},
	{"tháng này", func(p *Parser, b time.Time) Range { return p.monthOf(b) }},
	{"this month", func(p *Parser, b time.Time) Range { return p.monthOf(b) }},
	{"năm ngoái", func(p *Parser, b time.Time) Range { return p.Year(b.In(p.location).Year() - 1) }},
	{"last year", func(p *Parser, b time.Time) Range { return p.Year(b.In(p.location).Year() - 1) }},
	{"năm nay", func(p *Parser, b time.Time) Range { return p.Year(b.In(p.location).Year()) }},
	{"this year", func(p *Parser, b time.Time) Range { return p.Year(b.In(p.location).Year()) }},
	{"hôm nay", func(p *Parser, b time.Time) Range { return p.Day(b) }},
	{"today", func(p *Parser, b time.Time) Range { return p.Day(b) }},
	{"hôm qua", func(p *Parser, b time.Time) Range { return p.Day(b.AddDate(0, 0, -1)) }},
	{"yesterday", func(p *Parser, b time.Time) Range { return p.Day(b.AddDate(0, 0, -1)) }},
}

// FindRange looks for a relative period phrase ("tháng này", "last week",
// "30 ngày qua") in text and returns its range.
func (p *Parser) FindRange(text string, base time.Time) (Range, bool) {
	text = strings.ToLower(text)

	if m := lastNDaysRe.FindStringSubmatch(text); m != nil {
		n := m[1]
		if n == "" {
			n = m[2]
		}
		days, _ := strconv.Atoi(n)
		end := p.startOfDay(base).AddDate(0, 0, 1)
		return Range{From: end.AddDate(0, 0, -days), To: end}, true
	}

	for _, pp := range periodPhrases {
		if strings.Contains(text, pp.phrase) {
			return pp.build(p, base), true
		}
	}
	return Range{}, false
}

// Day returns the single-day range containing t.
func (p *Parser) Day(t time.Time) Range {
	start := p.startOfDay(t)
	return Range{From: start, To: start.AddDate(0, 0, 1)}
}

// Week returns the Monday-based week containing t.
func (p *Parser) Week(t time.Time) Range {
	start := p.startOfDay(t)
	offset := (int(start.Weekday()) + 6) % 7
	start = start.AddDate(0, 0, -offset)
	return Range{From: start, To: start.AddDate(0, 0, 7)}
}

// Month returns the range of the given calendar month.
func (p *Parser) Month(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, p.location)
	return Range{From: start, To: start.AddDate(0, 1, 0)}
}

// Year returns the range of the given calendar year.
func (p *Parser) Year(year int) Range {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, p.location)
	return Range{From: start, To: start.AddDate(1, 0, 0)}
}

// Between returns the range covering the days from..to, both inclusive.
func (p *Parser) Between(from, to time.Time) Range {
	return Range{From: p.startOfDay(from), To: p.startOfDay(to).AddDate(0, 0, 1)}
}

func (p *Parser) monthOf(t time.Time) Range {
	t = t.In(p.location)
	return p.Month(t.Year(), t.Month())
}
