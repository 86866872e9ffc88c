package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent/internal/catalog"
	"hr-agent/internal/dataservice"
	"hr-agent/internal/dispatcher"
	"hr-agent/pkg/log"
)

type fakeService struct {
	calls []dataservice.Request
	data  any
	err   error
	panic bool
}

func (f *fakeService) Call(ctx context.Context, req dataservice.Request) (any, error) {
	f.calls = append(f.calls, req)
	if f.panic {
		panic("boom")
	}
	return f.data, f.err
}

func route(t *testing.T, id string) catalog.Route {
	t.Helper()
	r, err := catalog.Default().Resolve(id)
	require.NoError(t, err)
	return r
}

func TestDispatch_MissingPathID(t *testing.T) {
	svc := &fakeService{}
	uc := New(log.NewNop(), svc)

	var checked int
	for _, r := range catalog.Default().All() {
		if !r.HasPathParams() {
			continue
		}
		checked++
		t.Run(r.ID, func(t *testing.T) {
			res := uc.Dispatch(context.Background(), r, dispatcher.Args{})

			assert.False(t, res.Success)
			assert.Equal(t, "MissingArgument: "+r.Holes()[0], res.Error)
			assert.Equal(t, r.Path, res.ResolvedPath)
			assert.Equal(t, r.ID, res.RouteID)
			assert.Nil(t, res.Request)
			assert.Empty(t, svc.calls)
		})
	}
	assert.Greater(t, checked, 30)
}

func TestDispatch_ResolvesPath(t *testing.T) {
	svc := &fakeService{data: map[string]any{"id": int64(0)}}
	uc := New(log.NewNop(), svc)

	res := uc.Dispatch(context.Background(), route(t, "employees.read"), dispatcher.Args{
		PathIDs: map[string]int64{"employee_id": 0, "leave_id": 9},
	})

	require.True(t, res.Success)
	assert.Equal(t, "GET /api/hr/employees/0", res.APICalled())
	require.Len(t, svc.calls, 1)
	assert.Equal(t, dataservice.Request{
		Entity:  "employee",
		Op:      dataservice.OpRead,
		PathIDs: map[string]int64{"employee_id": 0},
	}, svc.calls[0])
}

func TestDispatch_Delete(t *testing.T) {
	tests := []struct {
		route  string
		hole   string
		op     dataservice.Op
		values map[string]any
	}{
		{"employees.delete", "employee_id", dataservice.OpSoftDelete, map[string]any{"active": false}},
		{"contracts.delete", "contract_id", dataservice.OpSoftDelete, map[string]any{"state": "cancel"}},
		{"attendances.delete", "attendance_id", dataservice.ActionOp("unlink"), nil},
	}
	for _, tc := range tests {
		t.Run(tc.route, func(t *testing.T) {
			svc := &fakeService{data: true}
			uc := New(log.NewNop(), svc)

			res := uc.Dispatch(context.Background(), route(t, tc.route), dispatcher.Args{
				PathIDs: map[string]int64{tc.hole: 5},
				Body:    map[string]any{"name": "ignored"},
			})

			require.True(t, res.Success)
			require.Len(t, svc.calls, 1)
			assert.Equal(t, tc.op, svc.calls[0].Op)
			assert.Equal(t, tc.values, svc.calls[0].Values)
		})
	}
}

func TestDispatch_BodyWhitelistAndAliases(t *testing.T) {
	svc := &fakeService{data: map[string]any{"id": int64(1)}}
	uc := New(log.NewNop(), svc)

	res := uc.Dispatch(context.Background(), route(t, "jobs.create"), dispatcher.Args{
		Body: map[string]any{
			"title":              "Backend Developer",
			"expected_employees": 3,
			"department_id":      int64(4),
			"noise":              "dropped",
			"state":              "open",
		},
		Filters: []dataservice.Condition{dataservice.Cond("name", "=", "x")},
		Extras:  map[string]any{"limit": 5},
	})

	require.True(t, res.Success, res.Error)
	require.Len(t, svc.calls, 1)
	assert.Equal(t, dataservice.Request{
		Entity: "job",
		Op:     dataservice.OpCreate,
		Values: map[string]any{
			"name":              "Backend Developer",
			"no_of_recruitment": 3,
			"department_id":     int64(4),
		},
	}, svc.calls[0])
	assert.Equal(t, "POST /api/hr/jobs", res.APICalled())
}

func TestDispatch_CanonicalKeyWinsOverAlias(t *testing.T) {
	svc := &fakeService{}
	uc := New(log.NewNop(), svc)

	uc.Dispatch(context.Background(), route(t, "jobs.create"), dispatcher.Args{
		Body: map[string]any{"name": "QA", "title": "Tester"},
	})

	require.Len(t, svc.calls, 1)
	assert.Equal(t, "QA", svc.calls[0].Values["name"])
}

func TestDispatch_SchemaHints(t *testing.T) {
	svc := &fakeService{}
	uc := New(log.NewNop(), svc)

	missing := uc.Dispatch(context.Background(), route(t, "jobs.create"), dispatcher.Args{
		Body: map[string]any{"name": "  ", "department_id": int64(2)},
	})
	assert.False(t, missing.Success)
	assert.Equal(t, "MissingArgument: name", missing.Error)

	both := uc.Dispatch(context.Background(), route(t, "contracts.create"), dispatcher.Args{})
	assert.Equal(t, "MissingArgument: employee_id, wage", both.Error)

	invalid := uc.Dispatch(context.Background(), route(t, "contracts.create"), dispatcher.Args{
		Body: map[string]any{"employee_id": int64(1), "wage": "a lot"},
	})
	assert.False(t, invalid.Success)
	assert.Contains(t, invalid.Error, "InvalidArgument: wage must be number")

	assert.Empty(t, svc.calls)
}

func TestDispatch_PathIDsSatisfyRequiredKeys(t *testing.T) {
	svc := &fakeService{}
	uc := New(log.NewNop(), svc)

	res := uc.Dispatch(context.Background(), route(t, "employees.skills.add"), dispatcher.Args{
		PathIDs: map[string]int64{"employee_id": 3},
		Body:    map[string]any{"skill_name": "Go", "level": "expert"},
	})

	require.True(t, res.Success, res.Error)
	require.Len(t, svc.calls, 1)
	assert.Equal(t, map[string]int64{"employee_id": 3}, svc.calls[0].PathIDs)
	assert.Equal(t, map[string]any{"skill_name": "Go", "level": "expert"}, svc.calls[0].Values)
}

func TestDispatch_Extras(t *testing.T) {
	svc := &fakeService{}
	uc := New(log.NewNop(), svc)

	empty := uc.Dispatch(context.Background(), route(t, "search.global"), dispatcher.Args{
		Extras: map[string]any{"search_term": "  ", "limit": 5},
	})
	assert.Equal(t, "MissingArgument: search_term", empty.Error)
	assert.Empty(t, svc.calls)

	list := uc.Dispatch(context.Background(), route(t, "employees.list"), dispatcher.Args{
		Filters: []dataservice.Condition{dataservice.Cond("active", "=", false)},
		Extras:  map[string]any{"limit": 5, "days": 3, "month": 2},
	})
	require.True(t, list.Success)
	require.Len(t, svc.calls, 1)
	assert.Equal(t, dataservice.Request{
		Entity:  "employee",
		Op:      dataservice.OpList,
		Filters: []dataservice.Condition{dataservice.Cond("active", "=", false)},
		Extras:  map[string]any{"limit": 5},
	}, svc.calls[0])
}

func TestDispatch_FiltersOnlyWhenAccepted(t *testing.T) {
	svc := &fakeService{}
	uc := New(log.NewNop(), svc)

	uc.Dispatch(context.Background(), route(t, "leave_types.list"), dispatcher.Args{
		Filters: []dataservice.Condition{dataservice.Cond("name", "ilike", "ốm")},
	})

	require.Len(t, svc.calls, 1)
	assert.Nil(t, svc.calls[0].Filters)
}

func TestDispatch_DataServiceError(t *testing.T) {
	svc := &fakeService{err: errors.New("DataServiceError: record not found")}
	uc := New(log.NewNop(), svc)

	res := uc.Dispatch(context.Background(), route(t, "leaves.approve"), dispatcher.Args{
		PathIDs: map[string]int64{"leave_id": 42},
	})

	assert.False(t, res.Success)
	assert.Equal(t, "DataServiceError: record not found", res.Error)
	assert.Equal(t, "/api/hr/leaves/42/approve", res.ResolvedPath)
	require.NotNil(t, res.Request)
	assert.Equal(t, dataservice.ActionOp("approve"), res.Request.Op)
}

func TestDispatch_RecoversPanic(t *testing.T) {
	svc := &fakeService{panic: true}
	uc := New(log.NewNop(), svc)

	var res dispatcher.Result
	require.NotPanics(t, func() {
		res = uc.Dispatch(context.Background(), route(t, "dashboard.stats"), dispatcher.Args{})
	})

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "DataServiceError")
	assert.Contains(t, res.Error, "boom")
	assert.Equal(t, "dashboard.stats", res.RouteID)
	assert.NotNil(t, res.Request)
}
