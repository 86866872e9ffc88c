package extractor

import (
	"regexp"
	"strconv"
)

var genericIDRe = regexp.MustCompile(`(?i)(?:(?:^|[^\p{L}\p{N}_])id\s*[:#]?\s*|#)(\d+)`)

// idMatch is one number found in the text with its byte span.
type idMatch struct {
	start int
	value int64
}

type idScanner struct {
	text string
	used map[int]bool
}

func newIDScanner(text string) *idScanner {
	return &idScanner{text: text, used: map[int]bool{}}
}

// ref returns the id attached to one of the field's nouns, e.g. "nhân viên 7".
func (s *idScanner) ref(field string) (int64, bool) {
	re, ok := idRe[field]
	if !ok {
		return 0, false
	}
	for _, m := range re.FindAllStringSubmatchIndex(s.text, -1) {
		if s.used[m[2]] {
			continue
		}
		if v, ok := s.parse(m[2], m[3]); ok {
			s.used[m[2]] = true
			return v, true
		}
	}
	return 0, false
}

// generic returns the first unused "id N" or "#N".
func (s *idScanner) generic() (int64, bool) {
	for _, m := range genericIDRe.FindAllStringSubmatchIndex(s.text, -1) {
		if s.used[m[2]] {
			continue
		}
		if v, ok := s.parse(m[2], m[3]); ok {
			s.used[m[2]] = true
			return v, true
		}
	}
	return 0, false
}

func (s *idScanner) parse(start, end int) (int64, bool) {
	v, err := strconv.ParseInt(s.text[start:end], 10, 64)
	return v, err == nil
}

// pathIDs resolves every hole: noun-attached ids first, then the generic
// form for a single remaining hole.
func (s *idScanner) pathIDs(holes []string) map[string]int64 {
	out := make(map[string]int64, len(holes))
	var missing []string
	for _, h := range holes {
		if v, ok := s.ref(h); ok {
			out[h] = v
			continue
		}
		missing = append(missing, h)
	}
	if len(missing) == 1 {
		if v, ok := s.generic(); ok {
			out[missing[0]] = v
		}
	}
	return out
}
