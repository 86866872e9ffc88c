package formatter

import (
	"context"
	"strings"

	"hr-agent/internal/dispatcher"
	pkgLog "hr-agent/pkg/log"
)

// render turns successful result data into a reply.
type render func(data any) string

type implFormatter struct {
	l       pkgLog.Logger
	renders map[string]render
}

var _ Formatter = (*implFormatter)(nil)

// New creates a formatter with the built-in route renderers.
func New(l pkgLog.Logger) *implFormatter {
	return &implFormatter{
		l: l,
		renders: map[string]render{
			"employees.list":     employeeList,
			"dashboard.stats":    dashboard,
			"search.global":      searchResults,
			"attendances.report": attendanceReport,
			"leaves.list":        leaveList,
			"jobs.create":        createdJob,
			"employees.create":   createdEmployee,
			"departments.create": createdDepartment,
		},
	}
}

// Format renders res. Failures become one ❌ line; routes without a renderer,
// and renderers that panic, use the generic block.
func (f *implFormatter) Format(ctx context.Context, routeID string, res dispatcher.Result) (out string) {
	if !res.Success {
		return "❌ Lỗi: " + strings.TrimSpace(res.Error)
	}

	r, ok := f.renders[routeID]
	if !ok {
		return generic(routeID, res.Data)
	}

	defer func() {
		if p := recover(); p != nil {
			f.l.Warnf(ctx, "%s: %s renderer panicked: %v", LogPrefixFormat, routeID, p)
			out = generic(routeID, res.Data)
		}
	}()
	return r(res.Data)
}
