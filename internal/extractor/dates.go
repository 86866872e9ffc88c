package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"hr-agent/pkg/datemath"
)

var (
	isoDateRe  = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	dmyDateRe  = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	monthRe    = regexp.MustCompile(`(?i)(?:tháng|month)\s*(\d{1,2})(?:\s*[/-]\s*(\d{4}))?`)
	yearRe     = regexp.MustCompile(`(?i)(?:năm|year|in)\s*(\d{4})`)
	fromQualRe = regexp.MustCompile(`(?i)(?:từ|from|since|bắt đầu)\s*(?:ngày|date)?\s*$`)
	toQualRe   = regexp.MustCompile(`(?i)(?:đến|tới|to|until|-|–)\s*(?:ngày|date)?\s*$`)
	qualWindow = 24
)

// dateFacts are the date expressions found in one utterance. Dates are ISO strings.
type dateFacts struct {
	date, from, to string
	month, year    int
	relative       datemath.Range
	hasRelative    bool
}

func (f dateFacts) empty() bool {
	return f.date == "" && f.from == "" && f.to == "" && f.month == 0 && f.year == 0 && !f.hasRelative
}

type datePos struct {
	pos int
	iso string
}

func (e *implExtractor) findDates(nfc string, now time.Time) dateFacts {
	var found []datePos
	for _, m := range isoDateRe.FindAllStringSubmatchIndex(nfc, -1) {
		if iso, ok := isoDate(nfc[m[2]:m[3]], nfc[m[4]:m[5]], nfc[m[6]:m[7]]); ok {
			found = append(found, datePos{m[0], iso})
		}
	}
	for _, m := range dmyDateRe.FindAllStringSubmatchIndex(nfc, -1) {
		if iso, ok := isoDate(nfc[m[6]:m[7]], nfc[m[4]:m[5]], nfc[m[2]:m[3]]); ok {
			found = append(found, datePos{m[0], iso})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	var f dateFacts
	var bare []string
	for _, d := range found {
		before := nfc[max(0, d.pos-qualWindow):d.pos]
		switch {
		case fromQualRe.MatchString(before) && f.from == "":
			f.from = d.iso
		case toQualRe.MatchString(before) && f.to == "":
			f.to = d.iso
		default:
			bare = append(bare, d.iso)
		}
	}
	switch {
	case f.from == "" && f.to == "" && len(bare) >= 2:
		f.from, f.to = bare[0], bare[1]
	case f.from == "" && f.to == "" && len(bare) == 1:
		f.date = bare[0]
	case len(bare) > 0 && f.from == "":
		f.from = bare[0]
	case len(bare) > 0 && f.to == "":
		f.to = bare[0]
	}

	if len(found) == 0 {
		if m := monthRe.FindStringSubmatch(nfc); m != nil {
			if n, _ := strconv.Atoi(m[1]); n >= 1 && n <= 12 {
				f.month = n
				if m[2] != "" {
					f.year, _ = strconv.Atoi(m[2])
				}
			}
		}
		if m := yearRe.FindStringSubmatch(nfc); m != nil && f.year == 0 {
			f.year, _ = strconv.Atoi(m[1])
		}
	}

	if f.empty() {
		f.relative, f.hasRelative = e.dates.FindRange(nfc, now)
	}
	return f
}

func isoDate(y, m, d string) (string, bool) {
	yy, _ := strconv.Atoi(y)
	mm, _ := strconv.Atoi(m)
	dd, _ := strconv.Atoi(d)
	t := time.Date(yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if t.Year() != yy || int(t.Month()) != mm || t.Day() != dd {
		return "", false
	}
	return t.Format(datemath.ISODate), true
}

// extras renders the facts as request extras.
func (f dateFacts) extras(out map[string]any) {
	if f.date != "" {
		out["date"] = f.date
	}
	if f.from != "" {
		out["date_from"] = f.from
	}
	if f.to != "" {
		out["date_to"] = f.to
	}
	if f.month != 0 {
		out["month"] = f.month
	}
	if f.year != 0 {
		out["year"] = f.year
	}
	if f.hasRelative {
		out["date_from"] = f.relative.FromString()
		out["date_to"] = f.relative.LastDayString()
	}
}

// rangeOf turns the facts into one half-open range of days.
func (e *implExtractor) rangeOf(f dateFacts, now time.Time) (datemath.Range, bool) {
	loc := e.dates.Location()
	parse := func(s string) time.Time {
		t, _ := time.ParseInLocation(datemath.ISODate, s, loc)
		return t
	}

	switch {
	case f.hasRelative:
		return f.relative, true
	case f.from != "" && f.to != "":
		return e.dates.Between(parse(f.from), parse(f.to)), true
	case f.from != "":
		from := parse(f.from)
		return datemath.Range{From: from, To: from.AddDate(100, 0, 0)}, true
	case f.to != "":
		return datemath.Range{From: time.Time{}, To: parse(f.to).AddDate(0, 0, 1)}, true
	case f.date != "":
		return e.dates.Day(parse(f.date)), true
	case f.month != 0:
		year := f.year
		if year == 0 {
			year = now.In(loc).Year()
		}
		return e.dates.Month(year, time.Month(f.month)), true
	case f.year != 0:
		return e.dates.Year(f.year), true
	}
	return datemath.Range{}, false
}
