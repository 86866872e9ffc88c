package extractor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent/internal/catalog"
	"hr-agent/internal/dataservice"
	"hr-agent/internal/dispatcher"
	"hr-agent/internal/extractor"
	"hr-agent/pkg/datemath"
	"hr-agent/pkg/log"
)

type departmentLookup struct {
	calls []dataservice.Request
}

func (d *departmentLookup) Call(ctx context.Context, req dataservice.Request) (any, error) {
	d.calls = append(d.calls, req)
	if req.Entity == "department" && len(req.Filters) == 1 && req.Filters[0].Value == "Engineering" {
		return []map[string]any{{"id": int64(4), "name": "Engineering"}}, nil
	}
	return []map[string]any{}, nil
}

func newExtractor(t *testing.T, svc dataservice.Service) extractor.Extractor {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, dates.Location())
	return extractor.New(log.NewNop(), svc, dates, extractor.WithClock(func() time.Time { return now }))
}

func extract(t *testing.T, ex extractor.Extractor, routeID, text string) dispatcher.Args {
	t.Helper()
	route, err := catalog.Default().Resolve(routeID)
	require.NoError(t, err)
	return ex.Extract(context.Background(), text, route)
}

func TestExtract_PathIDs(t *testing.T) {
	ex := newExtractor(t, nil)
	tests := []struct {
		route string
		text  string
		want  map[string]int64
	}{
		{"leaves.approve", "Phê duyệt nghỉ phép id 42", map[string]int64{"leave_id": 42}},
		{"attendances.checkin", "Check in nhân viên 7", map[string]int64{"employee_id": 7}},
		{"employees.delete", "Xóa nhân viên 5", map[string]int64{"employee_id": 5}},
		{"employees.read", "Thông tin nhân viên id 0", map[string]int64{"employee_id": 0}},
		{"leaves.refuse", "Từ chối đơn #15", map[string]int64{"leave_id": 15}},
		{"contracts.renew", "Gia hạn hợp đồng số 12", map[string]int64{"contract_id": 12}},
		{"employees.read", "Chi tiết nhân viên", map[string]int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			args := extract(t, ex, tt.route, tt.text)
			assert.Equal(t, tt.want, args.PathIDs)
		})
	}
}

func TestExtract_CreateJob(t *testing.T) {
	text := `Tạo vị trí "Backend Engineer" cho phòng ban "Engineering" cần 3 người`

	lookup := &departmentLookup{}
	args := extract(t, newExtractor(t, lookup), "jobs.create", text)
	assert.Equal(t, "Backend Engineer", args.Body["name"])
	assert.Equal(t, 3, args.Body["expected_employees"])
	assert.Equal(t, int64(4), args.Body["department_id"])
	assert.NotContains(t, args.Body, "department_name")
	require.NotEmpty(t, lookup.calls)
	assert.Equal(t, "=ilike", lookup.calls[0].Filters[0].Operator)

	offline := extract(t, newExtractor(t, nil), "jobs.create", text)
	assert.Equal(t, "Engineering", offline.Body["department_name"])
	assert.NotContains(t, offline.Body, "department_id")

	single := extract(t, newExtractor(t, nil), "jobs.create", `Tạo vị trí "QA"`)
	assert.Equal(t, 1, single.Body["expected_employees"])
}

func TestExtract_CreateEmployee(t *testing.T) {
	args := extract(t, newExtractor(t, nil), "employees.create",
		"Thêm nhân viên Trần Thị Bình phòng ban 3 email binh@example.com sđt 0912345678 quản lý 2")
	assert.Equal(t, "Trần Thị Bình", args.Body["name"])
	assert.Equal(t, int64(3), args.Body["department_id"])
	assert.Equal(t, "binh@example.com", args.Body["email"])
	assert.Equal(t, "0912345678", args.Body["phone"])
	assert.Equal(t, int64(2), args.Body["manager_id"])
}

func TestExtract_CreateLeave(t *testing.T) {
	args := extract(t, newExtractor(t, nil), "leaves.create",
		"Tạo đơn nghỉ ốm cho nhân viên 3 từ 12/03/2026 đến 14/03/2026 lý do: sốt cao")
	assert.Equal(t, int64(3), args.Body["employee_id"])
	assert.Equal(t, "sick", args.Body["leave_type"])
	assert.Equal(t, "2026-03-12", args.Body["date_from"])
	assert.Equal(t, "2026-03-14", args.Body["date_to"])
	assert.Equal(t, "sốt cao", args.Body["reason"])
}

func TestExtract_Amounts(t *testing.T) {
	ex := newExtractor(t, nil)

	exp := extract(t, ex, "expenses.create", `Ghi nhận chi phí "Taxi" 250k cho nhân viên 2 ngày 05/03/2026`)
	assert.Equal(t, "Taxi", exp.Body["name"])
	assert.Equal(t, 250000.0, exp.Body["amount"])
	assert.Equal(t, int64(2), exp.Body["employee_id"])
	assert.Equal(t, "2026-03-05", exp.Body["date"])

	con := extract(t, ex, "contracts.create", "Tạo hợp đồng cho nhân viên 6 lương 15 triệu phụ cấp 1.500.000")
	assert.Equal(t, 15000000.0, con.Body["wage"])
	assert.Equal(t, 1500000.0, con.Body["allowance"])

	ts := extract(t, ex, "timesheets.create", "Ghi 3.5 giờ cho dự án 2 nhân viên 4 hôm nay")
	assert.Equal(t, 3.5, ts.Body["hours"])
	assert.Equal(t, int64(2), ts.Body["project_id"])
	assert.Equal(t, int64(4), ts.Body["employee_id"])
	assert.Equal(t, "2026-03-10", ts.Body["date"])
}

func TestExtract_Dates(t *testing.T) {
	ex := newExtractor(t, nil)

	month := extract(t, ex, "attendances.report", "Báo cáo chấm công tháng 3/2026")
	assert.Equal(t, 3, month.Extras["month"])
	assert.Equal(t, 2026, month.Extras["year"])

	span := extract(t, ex, "attendances.report", "Báo cáo chấm công từ 2026-03-01 đến 2026-03-15")
	assert.Equal(t, "2026-03-01", span.Extras["date_from"])
	assert.Equal(t, "2026-03-15", span.Extras["date_to"])

	day := extract(t, ex, "dashboard.stats", "Tổng quan ngày 05/03/2026")
	assert.Equal(t, "2026-03-05", day.Extras["date"])

	rel := extract(t, ex, "leaves.summary", "Tổng hợp nghỉ phép tháng này")
	assert.Equal(t, "2026-03-01", rel.Extras["date_from"])
	assert.Equal(t, "2026-03-31", rel.Extras["date_to"])

	bad := extract(t, ex, "dashboard.stats", "ngày 31/02/2026")
	assert.NotContains(t, bad.Extras, "date")
}

func TestExtract_ListFilters(t *testing.T) {
	args := extract(t, newExtractor(t, nil), "leaves.list", "Danh sách nghỉ phép chờ duyệt của nhân viên 7 tháng 3")
	assert.Equal(t, []dataservice.Condition{
		dataservice.Cond("employee_id", "=", int64(7)),
		dataservice.Cond("state", "in", []any{"confirm", "validate1"}),
		dataservice.Cond("date_from", ">=", "2026-03-01"),
		dataservice.Cond("date_from", "<", "2026-04-01"),
	}, args.Filters)

	archived := extract(t, newExtractor(t, nil), "employees.list", "Danh sách nhân viên đã nghỉ việc")
	assert.Equal(t, []dataservice.Condition{dataservice.Cond("active", "=", false)}, archived.Filters)

	lookup := &departmentLookup{}
	byDept := extract(t, newExtractor(t, lookup), "employees.list", `Nhân viên phòng "Engineering"`)
	assert.Equal(t, []dataservice.Condition{dataservice.Cond("department_id", "=", int64(4))}, byDept.Filters)

	named := extract(t, newExtractor(t, nil), "employees.list", `Danh sách nhân viên tên "An"`)
	assert.Equal(t, []dataservice.Condition{dataservice.Cond("name", "ilike", "An")}, named.Filters)

	none := extract(t, newExtractor(t, nil), "jobs.read", "Chi tiết vị trí 3")
	assert.Nil(t, none.Filters)
}

func TestExtract_SearchAndExport(t *testing.T) {
	ex := newExtractor(t, nil)

	quoted := extract(t, ex, "search.global", `Tìm "Nguyễn" trong hệ thống`)
	assert.Equal(t, "Nguyễn", quoted.Extras["search_term"])

	rest := extract(t, ex, "search.global", "search for john doe?")
	assert.Equal(t, "john doe", rest.Extras["search_term"])

	empty := extract(t, ex, "search.global", "tìm kiếm")
	assert.NotContains(t, empty.Extras, "search_term")

	export := extract(t, ex, "reports.export", "Xuất báo cáo chấm công tháng 3 dạng csv")
	assert.Equal(t, "attendances", export.Extras["report_type"])
	assert.Equal(t, "csv", export.Extras["format"])
	assert.Equal(t, 3, export.Extras["month"])

	expiring := extract(t, ex, "contracts.expiring", "Hợp đồng sắp hết hạn trong 45 ngày")
	assert.Equal(t, 45, expiring.Extras["days"])
}

func TestExtract_ExplicitPairs(t *testing.T) {
	args := extract(t, newExtractor(t, nil), "employees.update", `Cập nhật nhân viên 5 job_title: "Team Lead", mobile_phone=0987654321`)
	assert.Equal(t, map[string]int64{"employee_id": 5}, args.PathIDs)
	assert.Equal(t, "Team Lead", args.Body["job_title"])
	assert.Equal(t, "0987654321", args.Body["phone"])
}
