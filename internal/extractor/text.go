package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type quoted struct {
	start, end int
	text       string
}

var quoteRe = regexp.MustCompile(`["“”«»]([^"“”«»]+)["“”«»]`)

// quotedStrings returns every quoted substring with its byte span.
func quotedStrings(text string) []quoted {
	var out []quoted
	for _, m := range quoteRe.FindAllStringSubmatchIndex(text, -1) {
		if v := strings.TrimSpace(text[m[2]:m[3]]); v != "" {
			out = append(out, quoted{start: m[0], end: m[1], text: v})
		}
	}
	return out
}

// quotedAfter returns the first quoted string starting within a few runes
// after one of the keyword matches.
func quotedAfter(text string, kw *regexp.Regexp, qs []quoted) (quoted, bool) {
	for _, m := range kw.FindAllStringIndex(text, -1) {
		for _, q := range qs {
			if q.start >= m[1] && len([]rune(text[m[1]:q.start])) <= 12 {
				return q, true
			}
		}
	}
	return quoted{}, false
}

func prepare(text string) (nfc, lower string) {
	nfc = strings.TrimSpace(norm.NFC.String(text))
	return nfc, strings.ToLower(nfc)
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// firstPhrase returns the value whose phrase occurs earliest in lower.
func firstPhrase[T any](lower string, table []struct {
	phrases []string
	value   T
}) (T, bool) {
	best, pos := -1, len(lower)+1
	for i, row := range table {
		for _, p := range row.phrases {
			if at := strings.Index(lower, p); at >= 0 && at < pos {
				best, pos = i, at
			}
		}
	}
	if best < 0 {
		var zero T
		return zero, false
	}
	return table[best].value, true
}

var numberRe = `(\d+(?:[.,]\d+)*)`

var unitMultipliers = map[string]float64{
	"tỷ": 1e9, "tỉ": 1e9, "billion": 1e9,
	"triệu": 1e6, "tr": 1e6, "million": 1e6, "m": 1e6,
	"nghìn": 1e3, "ngàn": 1e3, "k": 1e3,
}

const unitRe = `(tỷ|tỉ|billion|triệu|tr|million|m|nghìn|ngàn|k)?`

// parseAmount reads "10.000.000", "1,5" + "triệu", "500" + "k".
func parseAmount(num, unit string) (float64, bool) {
	unit = strings.ToLower(unit)
	mult, scaled := unitMultipliers[unit]
	if !scaled {
		mult = 1
	}

	s := num
	switch {
	case scaled:
		s = strings.ReplaceAll(s, ",", ".")
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	case strings.Count(s, ".")+strings.Count(s, ",") == 1 && !thousands(s):
		s = strings.ReplaceAll(s, ",", ".")
	default:
		s = strings.NewReplacer(".", "", ",", "").Replace(s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f * mult, true
}

// thousands reports whether a single separator is followed by exactly three digits.
func thousands(s string) bool {
	i := strings.LastIndexAny(s, ".,")
	return i >= 0 && len(s)-i-1 == 3
}

// amountRe matches a money amount following one of the keywords.
func amountRe(keywords string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + keywords + `)\s*(?:là|:|=|of)?\s*` + numberRe + `\s*` + unitRe + `(?:[^\p{L}]|$)`)
}

func amountAfter(text string, re *regexp.Regexp) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return parseAmount(m[1], m[2])
}

// numberValue turns "3" into int64, "2.5" into float64 and "true" into a bool.
// Anything else, including zero-padded codes, stays a string.
func numberValue(s string) any {
	s = strings.TrimSpace(s)
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		return s // phone numbers, codes
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
