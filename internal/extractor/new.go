package extractor

import (
	"context"
	"time"

	"hr-agent/internal/catalog"
	"hr-agent/internal/dataservice"
	"hr-agent/internal/dispatcher"
	"hr-agent/pkg/datemath"
	pkgLog "hr-agent/pkg/log"
)

type implExtractor struct {
	l     pkgLog.Logger
	svc   dataservice.Service
	dates *datemath.Parser
	now   func() time.Time
}

var _ Extractor = (*implExtractor)(nil)

// Option configures the extractor.
type Option func(*implExtractor)

// WithClock replaces time.Now for relative dates.
func WithClock(now func() time.Time) Option {
	return func(e *implExtractor) { e.now = now }
}

// New creates an extractor. svc resolves department names and may be nil.
func New(l pkgLog.Logger, svc dataservice.Service, dates *datemath.Parser, opts ...Option) *implExtractor {
	e := &implExtractor{
		l:     l,
		svc:   svc,
		dates: dates,
		now:   time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// utterance is the per-call scan state.
type utterance struct {
	nfc    string
	lower  string
	quotes []quoted
	ids    *idScanner
	dates  dateFacts
	now    time.Time

	pairs  []pair

	// deptQuote is the quoted department name, excluded from titles and search terms.
	deptQuote    quoted
	hasDeptQuote bool
}

// otherQuotes are the quoted strings that are neither the department name nor
// the value of an explicit pair.
func (u *utterance) otherQuotes() []quoted {
	out := make([]quoted, 0, len(u.quotes))
	for _, q := range u.quotes {
		if u.hasDeptQuote && q == u.deptQuote {
			continue
		}
		if u.inPair(q.start) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (u *utterance) inPair(pos int) bool {
	for _, p := range u.pairs {
		if pos >= p.start && pos < p.end {
			return true
		}
	}
	return false
}

// Extract gathers path ids, extras, body values and list filters for route.
// Unknown keys are left for the dispatcher to drop.
func (e *implExtractor) Extract(ctx context.Context, text string, route catalog.Route) dispatcher.Args {
	nfc, lower := prepare(text)
	u := &utterance{
		nfc:    nfc,
		lower:  lower,
		quotes: quotedStrings(nfc),
		ids:    newIDScanner(nfc),
		now:    e.now(),
	}
	u.pairs = findPairs(nfc)
	u.dates = e.findDates(nfc, u.now)
	if route.Entity != "department" {
		u.deptQuote, u.hasDeptQuote = quotedAfter(nfc, deptNounRe, u.quotes)
	}

	args := dispatcher.Args{
		PathIDs: u.ids.pathIDs(route.PathParams),
		Body:    map[string]any{},
		Extras:  map[string]any{},
	}

	e.extras(u, route, args.Extras)
	if route.Verb == catalog.VerbCreate || route.Verb == catalog.VerbUpdate || len(route.Fields) > 0 {
		e.body(ctx, u, route, args.Body)
		applyPairs(u, route, args.Body, args.Extras)
	}
	if route.Filters {
		args.Filters = e.filters(ctx, u, route)
	}

	e.l.Debugf(ctx, "internal.extractor.Extract: route=%s path_ids=%v body=%v extras=%v filters=%v",
		route.ID, args.PathIDs, args.Body, args.Extras, args.Filters)
	return args
}

// lookupDepartment resolves a department name, exact match first.
func (e *implExtractor) lookupDepartment(ctx context.Context, name string) (int64, bool) {
	if e.svc == nil || name == "" {
		return 0, false
	}
	for _, op := range []string{"=ilike", "ilike"} {
		data, err := e.svc.Call(ctx, dataservice.Request{
			Entity:  "department",
			Op:      dataservice.OpList,
			Filters: []dataservice.Condition{dataservice.Cond("name", op, name)},
			Extras:  map[string]any{"limit": 1},
		})
		if err != nil {
			e.l.Warnf(ctx, "internal.extractor.lookupDepartment: %q: %v", name, err)
			return 0, false
		}
		if id, ok := firstID(data); ok {
			return id, true
		}
	}
	return 0, false
}

// firstID reads the id of the first row of a list reply.
func firstID(data any) (int64, bool) {
	var row map[string]any
	switch rows := data.(type) {
	case []map[string]any:
		if len(rows) > 0 {
			row = rows[0]
		}
	case []any:
		if len(rows) > 0 {
			row, _ = rows[0].(map[string]any)
		}
	}
	switch id := row["id"].(type) {
	case int64:
		return id, true
	case int:
		return int64(id), true
	case float64:
		return int64(id), true
	}
	return 0, false
}
