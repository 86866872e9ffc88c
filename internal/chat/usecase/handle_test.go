package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

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
	"hr-agent/internal/router"
	"hr-agent/pkg/datemath"
	"hr-agent/pkg/log"
)

// recorder keeps every request the pipeline sends to the Data Service.
type recorder struct {
	next  dataservice.Service
	calls []dataservice.Request
}

func (r *recorder) Call(ctx context.Context, req dataservice.Request) (any, error) {
	r.calls = append(r.calls, req)
	return r.next.Call(ctx, req)
}

type fixture struct {
	uc  chat.UseCase
	svc *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	l := log.NewNop()
	dates, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, dates.Location())
	clock := func() time.Time { return now }

	svc := &recorder{next: dsUC.New(l, memory.New(), dates, dsUC.WithClock(clock))}
	cat := catalog.Default()
	r, err := router.New(cat, l)
	require.NoError(t, err)

	uc := chatUC.New(l, cat, r,
		extractor.New(l, svc, dates, extractor.WithClock(clock)),
		dispatchUC.New(l, svc),
		formatter.New(l),
	)
	return &fixture{uc: uc, svc: svc}
}

func (f *fixture) seed(t *testing.T, entity string, vals map[string]any) int64 {
	t.Helper()
	out, err := f.svc.next.Call(context.Background(), dataservice.Request{Entity: entity, Op: dataservice.OpCreate, Values: vals})
	require.NoError(t, err)
	return out.(map[string]any)["id"].(int64)
}

func (f *fixture) handle(t *testing.T, msg string) chat.HandleOutput {
	t.Helper()
	f.svc.calls = nil
	out, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: msg, ConversationID: "conv-1"})
	require.NoError(t, err)
	return out
}

func TestHandle_ListEmployees(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "employee", map[string]any{"name": "Nguyễn Văn An"})

	out := f.handle(t, "Hiển thị danh sách nhân viên")

	assert.True(t, out.Success)
	assert.Equal(t, "employees.list", out.RouteID)
	assert.Equal(t, "GET /api/hr/employees", out.APICalled)
	assert.GreaterOrEqual(t, out.Confidence, 0.9)
	assert.True(t, strings.HasPrefix(out.Response, "👥"), out.Response)
	assert.Contains(t, out.Response, "Nguyễn Văn An")
	assert.Equal(t, chat.IntentHRAction, out.Intent)
	assert.Equal(t, "conv-1", out.ConversationID)
}

func TestHandle_CreateJobResolvesDepartment(t *testing.T) {
	f := newFixture(t)
	depID := f.seed(t, "department", map[string]any{"name": "Engineering"})

	out := f.handle(t, `Tạo vị trí "Backend Engineer" cho phòng ban "Engineering" cần 3 người`)

	require.True(t, out.Success, out.Error)
	assert.Equal(t, "jobs.create", out.RouteID)
	assert.True(t, strings.HasPrefix(out.Response, "✅ TẠO VỊ TRÍ TUYỂN DỤNG"), out.Response)

	last := f.svc.calls[len(f.svc.calls)-1]
	assert.Equal(t, dataservice.OpCreate, last.Op)
	assert.Equal(t, "Backend Engineer", last.Values["name"])
	assert.Equal(t, depID, last.Values["department_id"])
	assert.EqualValues(t, 3, last.Values["no_of_recruitment"])
	assert.NotContains(t, last.Values, "expected_employees")
}

func TestHandle_MissingIDNeverReachesDataService(t *testing.T) {
	f := newFixture(t)

	out := f.handle(t, "Phê duyệt nghỉ phép")

	assert.False(t, out.Success)
	assert.Equal(t, "leaves.approve", out.RouteID)
	assert.Equal(t, "MissingArgument: leave_id", out.Error)
	assert.True(t, strings.HasPrefix(out.Response, "❌"))
	assert.Empty(t, f.svc.calls)
}

func TestHandle_ApproveUnknownLeave(t *testing.T) {
	f := newFixture(t)

	out := f.handle(t, "Phê duyệt nghỉ phép id 42")

	assert.False(t, out.Success)
	assert.Equal(t, "POST /api/hr/leaves/42/approve", out.APICalled)
	assert.GreaterOrEqual(t, out.Confidence, 0.9)
	require.Len(t, f.svc.calls, 1)
	assert.Equal(t, map[string]int64{"leave_id": 42}, f.svc.calls[0].PathIDs)
	assert.Nil(t, f.svc.calls[0].Values)
}

func TestHandle_CheckIn(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, "employee", map[string]any{"name": "Lê Văn Cường"})
	require.Equal(t, int64(1), id)

	out := f.handle(t, "Check in nhân viên 1")

	require.True(t, out.Success, out.Error)
	assert.Equal(t, "attendances.checkin", out.RouteID)
	require.Len(t, f.svc.calls, 1)
	assert.Equal(t, dataservice.ActionOp("checkin"), f.svc.calls[0].Op)
	assert.Equal(t, map[string]int64{"employee_id": 1}, f.svc.calls[0].PathIDs)
}

func TestHandle_SoftDeleteTwice(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		f.seed(t, "employee", map[string]any{"name": "NV"})
	}

	first := f.handle(t, "Xóa nhân viên 5")
	second := f.handle(t, "Xóa nhân viên 5")

	require.True(t, first.Success, first.Error)
	require.True(t, second.Success, second.Error)
	assert.Equal(t, "DELETE /api/hr/employees/5", second.APICalled)
	require.Len(t, f.svc.calls, 1)
	assert.Equal(t, dataservice.OpSoftDelete, f.svc.calls[0].Op)
	assert.Equal(t, map[string]any{"active": false}, f.svc.calls[0].Values)

	row, err := f.svc.next.Call(context.Background(), dataservice.Request{
		Entity: "employee", Op: dataservice.OpRead, PathIDs: map[string]int64{"employee_id": 5},
	})
	require.NoError(t, err)
	assert.Equal(t, false, row.(map[string]any)["active"])
}

func TestHandle_Fallback(t *testing.T) {
	f := newFixture(t)

	out := f.handle(t, "random nonsense")

	assert.True(t, out.Success)
	assert.Equal(t, "dashboard.stats", out.RouteID)
	assert.True(t, out.Fallback)
	assert.Equal(t, 0.5, out.Confidence)
	assert.True(t, strings.HasPrefix(out.Response, "📊"), out.Response)
}

func TestHandle_EmptyMessage(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: "   "})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestHandle_GeneratesConversationID(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Handle(context.Background(), chat.HandleInput{Message: "Tổng quan nhân sự"})
	require.NoError(t, err)
	assert.Len(t, out.ConversationID, 36)
}

func TestHandle_StatusWordsNeverMutate(t *testing.T) {
	f := newFixture(t)
	empID := f.seed(t, "employee", map[string]any{"name": "Trần Thị Bình"})
	leaveID := f.seed(t, "leave", map[string]any{"employee_id": empID, "date_from": "2026-03-12"})

	tests := []struct {
		msg   string
		route string
	}{
		{"Xem đơn nghỉ phép 1 chờ duyệt", "leaves.read"},
		{"Danh sách nghỉ phép chờ duyệt", "leaves.list"},
		{"List approved leaves", "leaves.list"},
		{"Danh sách đơn nghỉ chờ xác nhận", "leaves.list"},
	}

	for _, tc := range tests {
		t.Run(tc.msg, func(t *testing.T) {
			out := f.handle(t, tc.msg)

			require.True(t, out.Success, out.Error)
			assert.Equal(t, tc.route, out.RouteID)
			for _, call := range f.svc.calls {
				assert.Contains(t, []dataservice.Op{dataservice.OpList, dataservice.OpRead}, call.Op)
			}
		})
	}

	row, err := f.svc.next.Call(context.Background(), dataservice.Request{
		Entity: "leave", Op: dataservice.OpRead, PathIDs: map[string]int64{"leave_id": leaveID},
	})
	require.NoError(t, err)
	assert.Equal(t, "confirm", row.(map[string]any)["state"])
}

func TestHandle_PendingLeavesFilter(t *testing.T) {
	f := newFixture(t)
	empID := f.seed(t, "employee", map[string]any{"name": "Trần Thị Bình"})
	f.seed(t, "leave", map[string]any{"employee_id": empID, "date_from": "2026-03-12"})
	f.seed(t, "leave", map[string]any{"employee_id": empID, "date_from": "2026-03-20", "state": "validate"})

	out := f.handle(t, "Danh sách nghỉ phép chờ duyệt")

	require.True(t, out.Success, out.Error)
	require.Len(t, f.svc.calls, 1)
	assert.Equal(t, dataservice.OpList, f.svc.calls[0].Op)
	rows, ok := out.Data.([]map[string]any)
	require.True(t, ok, "data = %T", out.Data)
	require.Len(t, rows, 1)
	assert.Equal(t, "confirm", rows[0]["state"])
}

func TestSuggestionsAreRoutable(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "department", map[string]any{"name": "Engineering"})
	f.seed(t, "department", map[string]any{"name": "Sales"})
	for i := 0; i < 7; i++ {
		f.seed(t, "employee", map[string]any{"name": "NV", "department_id": int64(1)})
	}
	for i := 0; i < 42; i++ {
		f.seed(t, "leave", map[string]any{"employee_id": int64(1), "date_from": "2026-03-02"})
	}
	for i := 0; i < 5; i++ {
		f.seed(t, "payslip", map[string]any{"employee_id": int64(1), "basic_wage": 10000000.0})
	}

	tests := []struct {
		msg   string
		route string
	}{
		{"Hiển thị danh sách nhân viên", "employees.list"},
		{`Thêm nhân viên "Nguyễn Văn An" phòng ban 2 email an@congty.vn`, "employees.create"},
		{`Tạo phòng ban "Marketing"`, "departments.create"},
		{`Tạo vị trí "Backend Engineer" cho phòng ban "Engineering" cần 3 người`, "jobs.create"},
		{"Check in nhân viên 7", "attendances.checkin"},
		{"Báo cáo chấm công tháng này", "attendances.report"},
		{"Tạo đơn nghỉ phép cho nhân viên 3 từ 12/03/2026 đến 14/03/2026 lý do: việc gia đình", "leaves.create"},
		{"Phê duyệt nghỉ phép id 42", "leaves.approve"},
		{"Danh sách nghỉ phép chờ duyệt", "leaves.list"},
		{"Hợp đồng sắp hết hạn trong 30 ngày", "contracts.expiring"},
		{"Tính lương phiếu lương 5", "payslips.compute"},
		{"Tổng hợp bảo hiểm tháng trước", "insurance.report"},
		{`Tìm "Nguyễn"`, "search.global"},
		{"Xuất báo cáo nhân viên dạng csv", "reports.export"},
		{"Tổng quan nhân sự", "dashboard.stats"},
	}

	msgs := make([]string, 0, len(tests))
	for _, tc := range tests {
		msgs = append(msgs, tc.msg)
	}
	require.Equal(t, msgs, f.uc.Suggestions(context.Background()))

	for _, tc := range tests {
		t.Run(tc.msg, func(t *testing.T) {
			out := f.handle(t, tc.msg)

			assert.Equal(t, tc.route, out.RouteID)
			assert.False(t, out.Fallback)
			assert.True(t, out.Success, out.Error)
		})
	}
	assert.Contains(t, f.uc.Help(context.Background()), "TRỢ LÝ NHÂN SỰ")
}
