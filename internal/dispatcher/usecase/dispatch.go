package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"hr-agent/internal/catalog"
	"hr-agent/internal/dataservice"
	"hr-agent/internal/dispatcher"
	"hr-agent/pkg/metrics"
)

// Dispatch builds the Data Service request for route, forwards it and wraps
// the reply. Unresolved path holes and invalid bodies fail before any call.
func (uc *implUseCase) Dispatch(ctx context.Context, route catalog.Route, args dispatcher.Args) (res dispatcher.Result) {
	start := time.Now()
	path := route.Path
	var sent *dataservice.Request

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: %s panicked: %v", dispatcher.LogPrefixDispatch, route.ID, r)
			res = dispatcher.Fail(route, path, sent, fmt.Errorf("%w: %v", dataservice.ErrDataService, r))
		}
		metrics.DispatchTotal.WithLabelValues(route.ID, outcome(res)).Inc()
		metrics.DispatchDuration.WithLabelValues(route.ID).Observe(time.Since(start).Seconds())
	}()

	path, pathIDs, err := resolvePath(route, args.PathIDs)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", dispatcher.LogPrefixDispatch, route.ID, err)
		return dispatcher.Fail(route, path, nil, err)
	}

	req, err := uc.buildRequest(route, pathIDs, args)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", dispatcher.LogPrefixDispatch, route.ID, err)
		return dispatcher.Fail(route, path, nil, err)
	}

	sent = &req
	data, err := uc.svc.Call(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %s %s: %v", dispatcher.LogPrefixDispatch, route.Method, path, err)
		return dispatcher.Fail(route, path, sent, err)
	}

	uc.l.Infof(ctx, "%s: %s %s -> %s %s", dispatcher.LogPrefixDispatch, route.Method, path, req.Entity, req.Op)
	return dispatcher.OK(route, path, sent, data)
}

// resolvePath substitutes every {hole} of the template. The first unresolved
// hole fails with MissingArgument and the template is returned unchanged.
func resolvePath(route catalog.Route, ids map[string]int64) (string, map[string]int64, error) {
	holes := route.Holes()
	if len(holes) == 0 {
		return route.Path, nil, nil
	}

	path := route.Path
	resolved := make(map[string]int64, len(holes))
	for _, h := range holes {
		id, ok := ids[h]
		if !ok {
			return route.Path, nil, fmt.Errorf("%w: %s", dispatcher.ErrMissingArgument, h)
		}
		if id < 0 {
			return route.Path, nil, fmt.Errorf("%w: %s must not be negative", dispatcher.ErrInvalidArgument, h)
		}
		resolved[h] = id
		path = strings.Replace(path, "{"+h+"}", strconv.FormatInt(id, 10), 1)
	}
	return path, resolved, nil
}

func (uc *implUseCase) buildRequest(route catalog.Route, pathIDs map[string]int64, args dispatcher.Args) (dataservice.Request, error) {
	req := dataservice.Request{
		Entity:  route.Entity,
		Op:      opFor(route),
		PathIDs: pathIDs,
	}

	switch {
	case req.Op == dataservice.OpSoftDelete:
		req.Values = map[string]any{route.SoftDelete.Field: route.SoftDelete.Value}
	case len(route.Fields) > 0:
		values := whitelistBody(route, args.Body)
		if err := uc.validate(route, values, pathIDs); err != nil {
			return req, err
		}
		if len(values) > 0 {
			req.Values = values
		}
	}

	if route.Filters && len(args.Filters) > 0 {
		req.Filters = args.Filters
	}

	extras, err := whitelistExtras(route, args.Extras)
	if err != nil {
		return req, err
	}
	if len(extras) > 0 {
		req.Extras = extras
	}

	return req, nil
}

func opFor(route catalog.Route) dataservice.Op {
	switch route.Verb {
	case catalog.VerbList:
		return dataservice.OpList
	case catalog.VerbRead:
		return dataservice.OpRead
	case catalog.VerbCreate:
		return dataservice.OpCreate
	case catalog.VerbUpdate:
		return dataservice.OpUpdate
	case catalog.VerbDelete:
		if route.SoftDelete != nil {
			return dataservice.OpSoftDelete
		}
		return dataservice.ActionOp("unlink")
	}
	return dataservice.ActionOp(route.Verb.ActionName())
}

// whitelistBody keeps the keys the route accepts, renaming aliases. A key given
// under its own name wins over the same key given through an alias.
func whitelistBody(route catalog.Route, body map[string]any) map[string]any {
	out := make(map[string]any, len(body))
	var aliased []string
	for k, v := range body {
		if v == nil {
			continue
		}
		if _, ok := route.Aliases[k]; ok {
			aliased = append(aliased, k)
			continue
		}
		if route.AcceptsField(k) {
			out[k] = v
		}
	}

	sort.Strings(aliased)
	for _, k := range aliased {
		target := route.Aliases[k]
		if _, taken := out[target]; taken {
			continue
		}
		out[target] = body[k]
	}
	return out
}

func whitelistExtras(route catalog.Route, extras map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(route.Extras))
	for k, v := range extras {
		if v != nil && route.AcceptsExtra(k) {
			out[k] = v
		}
	}
	for _, k := range route.RequiredExtras {
		if s, ok := out[k].(string); ok && strings.TrimSpace(s) == "" {
			delete(out, k)
		}
		if _, ok := out[k]; !ok {
			return nil, fmt.Errorf("%w: %s", dispatcher.ErrMissingArgument, k)
		}
	}
	return out, nil
}

func outcome(res dispatcher.Result) string {
	switch {
	case res.Success:
		return metrics.OutcomeOK
	case res.Request == nil:
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
