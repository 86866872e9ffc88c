package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"hr-agent/internal/dataservice"
)

// matchAll reports whether row satisfies every condition.
func matchAll(row map[string]any, conds []dataservice.Condition) bool {
	for _, c := range conds {
		if !match(row, c) {
			return false
		}
	}
	return true
}

func match(row map[string]any, c dataservice.Condition) bool {
	got := row[c.Field]

	switch c.Operator {
	case "=":
		return equal(got, c.Value)
	case "!=":
		return !equal(got, c.Value)
	case ">", ">=", "<", "<=":
		if got == nil || c.Value == nil {
			return false
		}
		cmp := compare(got, c.Value)
		switch c.Operator {
		case ">":
			return cmp > 0
		case ">=":
			return cmp >= 0
		case "<":
			return cmp < 0
		default:
			return cmp <= 0
		}
	case "in", "not in":
		found := false
		for _, v := range asList(c.Value) {
			if equal(got, v) {
				found = true
				break
			}
		}
		return found == (c.Operator == "in")
	case "like":
		return strings.Contains(toString(got), toString(c.Value))
	case "ilike":
		return strings.Contains(strings.ToLower(toString(got)), strings.ToLower(toString(c.Value)))
	case "=ilike":
		return likePattern(toString(c.Value)).MatchString(toString(got))
	}
	return false
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		// A missing boolean flag counts as false.
		return a == b || (a == nil && b == false) || (b == nil && a == false)
	}
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		return fa == fb
	}
	return toString(a) == toString(b)
}

// compare orders numbers numerically and everything else as strings.
// ISO dates and datetimes order correctly as strings.
func compare(a, b any) int {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(toString(a), toString(b))
}

// likePattern turns a case-insensitive SQL pattern (% and _) into a regexp.
func likePattern(p string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("(?is)^")
	for _, r := range p {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

func asList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []int64:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = x
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = x
		}
		return out
	}
	return []any{v}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// number converts numeric values and numeric strings, defaulting to 0.
func number(v any) float64 {
	if f, ok := toFloat(v); ok {
		return f
	}
	if s, ok := v.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}

func toInt64(v any) (int64, bool) {
	if f, ok := toFloat(v); ok && f == math.Trunc(f) {
		return int64(f), true
	}
	if s, ok := v.(string); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}
