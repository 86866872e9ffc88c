package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent/internal/catalog"
	"hr-agent/internal/chat"
	chatUC "hr-agent/internal/chat/usecase"
	"hr-agent/internal/dataservice"
	"hr-agent/internal/dataservice/repository/memory"
	dsUC "hr-agent/internal/dataservice/usecase"
	dispatchUC "hr-agent/internal/dispatcher/usecase"
	"hr-agent/internal/extractor"
	"hr-agent/internal/formatter"
	"hr-agent/internal/middleware"
	"hr-agent/internal/router"
	"hr-agent/pkg/datemath"
	"hr-agent/pkg/log"
)

type recorder struct {
	next  dataservice.Service
	calls []dataservice.Request
}

func (r *recorder) Call(ctx context.Context, req dataservice.Request) (any, error) {
	r.calls = append(r.calls, req)
	return r.next.Call(ctx, req)
}

func (r *recorder) last(t *testing.T) dataservice.Request {
	t.Helper()
	require.NotEmpty(t, r.calls)
	return r.calls[len(r.calls)-1]
}

type fixture struct {
	engine *gin.Engine
	chat   chat.UseCase
	svc    *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	dates, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, dates.Location())
	clock := func() time.Time { return now }

	svc := &recorder{next: dsUC.New(l, memory.New(), dates, dsUC.WithClock(clock))}
	cat := catalog.Default()
	rt, err := router.New(cat, l)
	require.NoError(t, err)
	d := dispatchUC.New(l, svc)

	engine := gin.New()
	RegisterRoutes(engine, New(l, d), cat, middleware.New(l, 0))

	return &fixture{
		engine: engine,
		chat:   chatUC.New(l, cat, rt, extractor.New(l, svc, dates, extractor.WithClock(clock)), d, formatter.New(l)),
		svc:    svc,
	}
}

func (f *fixture) seed(t *testing.T, entity string, vals map[string]any) int64 {
	t.Helper()
	out, err := f.svc.next.Call(context.Background(), dataservice.Request{Entity: entity, Op: dataservice.OpCreate, Values: vals})
	require.NoError(t, err)
	return out.(map[string]any)["id"].(int64)
}

func (f *fixture) do(t *testing.T, method, target, body string) (int, map[string]any) {
	t.Helper()
	f.svc.calls = nil
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func (f *fixture) say(t *testing.T, msg string) chat.HandleOutput {
	t.Helper()
	f.svc.calls = nil
	out, err := f.chat.Handle(context.Background(), chat.HandleInput{Message: msg})
	require.NoError(t, err)
	return out
}

func wire(t *testing.T, req dataservice.Request) string {
	t.Helper()
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return string(b)
}

func TestRegisterRoutes_EveryCatalogRoute(t *testing.T) {
	f := newFixture(t)

	registered := map[string]bool{}
	for _, ri := range f.engine.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}
	for _, route := range catalog.Default().All() {
		assert.True(t, registered[string(route.Method)+" "+route.GinPath()], route.ID)
	}
}

func TestRoute_ListEmployees(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "employee", map[string]any{"name": "An"})
	f.seed(t, "employee", map[string]any{"name": "Bình"})

	code, body := f.do(t, http.MethodGet, "/api/hr/employees?limit=1&fields=name", "")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 1)
	req := f.svc.last(t)
	assert.Equal(t, dataservice.OpList, req.Op)
	assert.Equal(t, map[string]any{"limit": 1, "fields": []any{"name"}}, req.Extras)
}

func TestRoute_DomainFromBody(t *testing.T) {
	f := newFixture(t)

	code, _ := f.do(t, http.MethodGet, "/api/hr/employees", `{"domain":[["department_id","=",4]]}`)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []dataservice.Condition{dataservice.Cond("department_id", "=", int64(4))}, f.svc.last(t).Filters)
}

func TestRoute_BadInput(t *testing.T) {
	f := newFixture(t)

	code, body := f.do(t, http.MethodGet, "/api/hr/employees/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])

	code, _ = f.do(t, http.MethodGet, "/api/hr/employees", `{"domain":[["name","~","x"]]}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = f.do(t, http.MethodPost, "/api/hr/jobs", `{"vals":`)
	assert.Equal(t, http.StatusBadRequest, code)

	assert.Empty(t, f.svc.calls)
}

func TestRoute_ApplicationFailureIs200(t *testing.T) {
	f := newFixture(t)

	code, body := f.do(t, http.MethodPost, "/api/hr/leaves/42/approve", "")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
	assert.NotContains(t, body, "data")
}

func TestRoute_MissingRequiredField(t *testing.T) {
	f := newFixture(t)

	code, body := f.do(t, http.MethodPost, "/api/hr/jobs", `{"vals":{"description":"x"}}`)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "MissingArgument: name", body["error"])
	assert.Empty(t, f.svc.calls)
}

func TestSurfacesSendIdenticalRequests(t *testing.T) {
	f := newFixture(t)
	depID := f.seed(t, "department", map[string]any{"name": "Engineering"})
	f.seed(t, "employee", map[string]any{"name": "Lê Văn Cường"})
	for i := 0; i < 4; i++ {
		f.seed(t, "employee", map[string]any{"name": "NV"})
	}

	cases := []struct {
		name   string
		msg    string
		method string
		target string
		body   string
	}{
		{
			name:   "approve leave",
			msg:    "Phê duyệt nghỉ phép id 42",
			method: http.MethodPost,
			target: "/api/hr/leaves/42/approve",
		},
		{
			name:   "check in",
			msg:    "Check in nhân viên 1",
			method: http.MethodPost,
			target: "/api/hr/attendances/checkin/1",
		},
		{
			name:   "archive employee",
			msg:    "Xóa nhân viên 5",
			method: http.MethodDelete,
			target: "/api/hr/employees/5",
		},
		{
			name:   "create job",
			msg:    `Tạo vị trí "Backend Engineer" cho phòng ban "Engineering" cần 3 người`,
			method: http.MethodPost,
			target: "/api/hr/jobs",
			body:   `{"vals":{"name":"Backend Engineer","department_id":` + jsonInt(depID) + `,"expected_employees":3}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f.say(t, tc.msg)
			fromChat := wire(t, f.svc.last(t))

			_, _ = f.do(t, tc.method, tc.target, tc.body)
			fromAPI := wire(t, f.svc.last(t))

			assert.JSONEq(t, fromChat, fromAPI)
		})
	}
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
