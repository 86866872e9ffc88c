package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// rows accepts the list shapes the Data Service backends return.
func rows(v any) []map[string]any {
	switch t := v.(type) {
	case []map[string]any:
		return t
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func object(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func num(v any) float64 {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	case float64:
		return t
	case json.Number:
		f, _ := t.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	}
	return 0
}

// count renders a whole number, or 0 when v is missing.
func count(v any) string {
	return strconv.FormatInt(int64(num(v)), 10)
}

func hours(v any) string {
	return strconv.FormatFloat(num(v), 'f', 1, 64)
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "có"
		}
		return "không"
	case time.Time:
		return t.Format(time.DateOnly)
	case int, int32, int64, float32, float64, json.Number:
		f := num(t)
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// date renders dates and timestamps as YYYY-MM-DD.
func date(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.DateOnly)
	}
	s := text(v)
	if len(s) >= 10 {
		if _, err := time.Parse(time.DateOnly, s[:10]); err == nil {
			return s[:10]
		}
	}
	return s
}

// period renders a date_from/date_to pair.
func period(m map[string]any) string {
	from, to := date(m["date_from"]), date(m["date_to"])
	switch {
	case from == "" && to == "":
		return ""
	case from == to || to == "":
		return from
	case from == "":
		return "→ " + to
	}
	return from + " → " + to
}

// firstText returns the first non-empty field of m.
func firstText(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := text(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func more(b *strings.Builder, total, shown int, noun string) {
	if total > shown {
		fmt.Fprintf(b, "… và %d %s khác\n", total-shown, noun)
	}
}
