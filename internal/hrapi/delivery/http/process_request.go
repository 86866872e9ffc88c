package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-agent/internal/catalog"
	"hr-agent/internal/dataservice"
	"hr-agent/internal/dispatcher"
)

const (
	keyVals   = "vals"
	keyDomain = "domain"
	keyFields = "fields"
)

// processRequest turns path params, the JSON body and query parameters into
// the same Args the extractor produces. Body keys win over query keys.
func (h *handler) processRequest(c *gin.Context, route catalog.Route) (dispatcher.Args, error) {
	args := dispatcher.Args{
		PathIDs: map[string]int64{},
		Extras:  map[string]any{},
	}

	for _, name := range route.PathParams {
		raw := c.Param(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return args, fmt.Errorf("%w: %s=%q", errInvalidPathParam, name, raw)
		}
		args.PathIDs[name] = id
	}

	if err := h.readQuery(c, &args); err != nil {
		return args, err
	}
	if err := h.readBody(c, &args); err != nil {
		return args, err
	}
	return args, nil
}

func (h *handler) readQuery(c *gin.Context, args *dispatcher.Args) error {
	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}
		v := values[len(values)-1]
		switch key {
		case keyDomain:
			filters, err := decodeDomain([]byte(v))
			if err != nil {
				return err
			}
			args.Filters = filters
		case keyFields:
			args.Extras[key] = splitFields(v)
		default:
			args.Extras[key] = queryValue(v)
		}
	}
	return nil
}

func (h *handler) readBody(c *gin.Context, args *dispatcher.Args) error {
	if c.Request.Body == nil {
		return nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}

	for key, msg := range top {
		switch key {
		case keyVals:
			var vals map[string]any
			if err := decodeNumbers(msg, &vals); err != nil {
				return fmt.Errorf("%w: vals: %v", errInvalidBody, err)
			}
			body := make(map[string]any, len(vals))
			for k, v := range vals {
				body[k] = normalize(v, false)
			}
			args.Body = body
		case keyDomain:
			filters, err := decodeDomain(msg)
			if err != nil {
				return err
			}
			args.Filters = filters
		default:
			var v any
			if err := decodeNumbers(msg, &v); err != nil {
				return fmt.Errorf("%w: %s: %v", errInvalidBody, key, err)
			}
			if s, ok := v.(string); ok && key == keyFields {
				v = splitFields(s)
			}
			args.Extras[key] = normalize(v, true)
		}
	}
	return nil
}

func decodeDomain(raw []byte) ([]dataservice.Condition, error) {
	var filters []dataservice.Condition
	if err := json.Unmarshal(raw, &filters); err != nil {
		return nil, fmt.Errorf("%w: domain: %v", errInvalidBody, err)
	}
	for i, f := range filters {
		filters[i].Value = normalize(f.Value, false)
	}
	return filters, nil
}

func decodeNumbers(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(dst)
}

// normalize gives JSON numbers the Go types the extractor uses: int64 for
// record values and ids, int for extras, float64 for fractions.
func normalize(v any, extra bool) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			if extra {
				return int(n)
			}
			return n
		}
		f, _ := t.Float64()
		return normalize(f, extra)
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			if extra {
				return int(t)
			}
			return int64(t)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalize(t[i], extra)
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalize(t[k], extra)
		}
		return t
	}
	return v
}

func splitFields(s string) []any {
	var out []any
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// queryValue keeps phone numbers and other long zero-padded strings as text.
func queryValue(s string) any {
	if len(s) > 2 && s[0] == '0' {
		return s
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
