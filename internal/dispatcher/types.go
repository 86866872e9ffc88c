package dispatcher

import (
	"hr-agent/internal/catalog"
	"hr-agent/internal/dataservice"
)

// Args are the arguments gathered for one route, by the extractor or by an
// HTTP handler. Keys the route does not accept are dropped by the dispatcher.
type Args struct {
	PathIDs map[string]int64
	Filters []dataservice.Condition
	Body    map[string]any
	Extras  map[string]any
}

// Result is the outcome of one dispatch. Build it with OK or Fail.
type Result struct {
	Success      bool   `json:"success"`
	Data         any    `json:"data,omitempty"`
	Error        string `json:"error,omitempty"`
	RouteID      string `json:"route_id"`
	Method       string `json:"method"`
	ResolvedPath string `json:"resolved_path"`

	// Request is what was sent to the Data Service; nil when nothing was sent.
	Request *dataservice.Request `json:"-"`
}

// OK is a successful dispatch.
func OK(route catalog.Route, path string, req *dataservice.Request, data any) Result {
	return Result{
		Success:      true,
		Data:         data,
		RouteID:      route.ID,
		Method:       string(route.Method),
		ResolvedPath: path,
		Request:      req,
	}
}

// Fail is a failed dispatch. err must not be nil.
func Fail(route catalog.Route, path string, req *dataservice.Request, err error) Result {
	return Result{
		Success:      false,
		Error:        err.Error(),
		RouteID:      route.ID,
		Method:       string(route.Method),
		ResolvedPath: path,
		Request:      req,
	}
}

// APICalled renders "<METHOD> <resolved path>".
func (r Result) APICalled() string {
	return r.Method + " " + r.ResolvedPath
}
