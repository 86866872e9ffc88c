package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"hr-agent/internal/catalog"
)

var (
	searchKwRe = regexp.MustCompile(`(?i)(?:tìm kiếm|tìm|tra cứu|search(?:\s+for)?|find|look up)\s*`)
	limitRe    = regexp.MustCompile(`(?i)(?:top|limit|giới hạn|tối đa|first)\s*(\d+)`)
	daysRe     = regexp.MustCompile(`(?i)(\d+)\s*(?:ngày|days?)(?:[^\p{L}]|$)`)
	csvRe      = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:csv|excel|xlsx)(?:[^\p{L}]|$)`)
	jsonRe     = regexp.MustCompile(`(?i)(?:^|[^\p{L}])json(?:[^\p{L}]|$)`)
)

func (e *implExtractor) extras(u *utterance, route catalog.Route, out map[string]any) {
	u.dates.extras(out)

	if route.AcceptsExtra("search_term") {
		if term := searchTerm(u); term != "" {
			out["search_term"] = term
		}
	}
	if m := limitRe.FindStringSubmatch(u.nfc); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			out["limit"] = n
		}
	}
	if m := daysRe.FindStringSubmatch(u.nfc); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			out["days"] = n
		}
	}
	if route.AcceptsExtra("report_type") {
		if rt, ok := firstPhrase(u.lower, reportTypes); ok {
			out["report_type"] = rt
		}
	}
	switch {
	case csvRe.MatchString(u.nfc):
		out["format"] = "csv"
	case jsonRe.MatchString(u.nfc):
		out["format"] = "json"
	}
}

// searchTerm prefers a quoted string after the search keyword, then any quoted
// string, then the rest of the sentence after the keyword.
func searchTerm(u *utterance) string {
	if q, ok := quotedAfter(u.nfc, searchKwRe, u.quotes); ok {
		return q.text
	}
	if qs := u.otherQuotes(); len(qs) > 0 {
		return qs[0].text
	}
	loc := searchKwRe.FindStringIndex(u.nfc)
	if loc == nil {
		return ""
	}
	return strings.Trim(u.nfc[loc[1]:], " \t?!.,:;\"'“”")
}
