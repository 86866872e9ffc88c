package extractor

import (
	"regexp"
	"strings"
)

// idWords are the nouns an id may follow, per id field. Longer phrases first.
var idWords = map[string][]string{
	"employee_id":       {"nhân viên", "employee", "nv"},
	"department_id":     {"phòng ban", "bộ phận", "department", "phòng"},
	"job_id":            {"vị trí tuyển dụng", "vị trí", "job", "position"},
	"contract_id":       {"hợp đồng", "contract"},
	"attendance_id":     {"bản ghi chấm công", "chấm công", "attendance"},
	"leave_id":          {"đơn nghỉ phép", "nghỉ phép", "đơn nghỉ", "leave"},
	"allocation_id":     {"phân bổ phép", "phân bổ", "allocation"},
	"payslip_id":        {"phiếu lương", "bảng lương", "payslip"},
	"payslip_run_id":    {"đợt lương", "payslip run", "payroll batch"},
	"policy_id":         {"hợp đồng bảo hiểm", "bảo hiểm", "policy", "insurance"},
	"project_id":        {"dự án", "project"},
	"task_id":           {"nhiệm vụ", "công việc", "task"},
	"skill_id":          {"kỹ năng", "skill"},
	"timesheet_id":      {"bảng chấm giờ", "timesheet"},
	"applicant_id":      {"ứng viên", "applicant", "candidate"},
	"expense_id":        {"chi phí", "expense"},
	"shift_id":          {"ca làm việc", "ca làm", "ca", "shift"},
	"manager_id":        {"quản lý", "manager"},
	"assignment_id":     {"phân công", "assignment"},
	"stage_id":          {"vòng tuyển dụng", "stage"},
	"sheet_id":          {"báo cáo chi phí", "expense sheet"},
	"leave_type_id":     {"loại nghỉ", "leave type"},
	"benefit_id":        {"quyền lợi", "benefit"},
	"payment_id":        {"khoản đóng", "payment"},
	"employee_skill_id": {"kỹ năng nhân viên", "employee skill"},
}

var idRe = func() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(idWords))
	for field, words := range idWords {
		alts := make([]string, len(words))
		for i, w := range words {
			alts[i] = regexp.QuoteMeta(w)
		}
		out[field] = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])(?:` + strings.Join(alts, "|") + `)\s*(?:(?:id|số|mã)\s*)?[#:]?\s*(\d+)`)
	}
	return out
}()

// nameFields is the display-name field searched by quoted terms in list requests.
var nameFields = map[string]string{
	"employee":         "name",
	"department":       "name",
	"job":              "name",
	"contract":         "name",
	"leave.type":       "name",
	"payslip":          "name",
	"payslip.run":      "name",
	"project":          "name",
	"task":             "name",
	"skill":            "name",
	"timesheet":        "name",
	"applicant":        "partner_name",
	"expense":          "name",
	"expense.sheet":    "name",
	"shift":            "name",
	"insurance.policy": "policy_number",
}

// nameKeys is the body key a quoted title fills on create and update.
var nameKeys = map[string]string{
	"employee":           "name",
	"department":         "name",
	"job":                "name",
	"contract":           "name",
	"leave":              "reason",
	"leave.type":         "name",
	"payslip":            "name",
	"payslip.run":        "name",
	"project":            "name",
	"task":               "name",
	"skill":              "name",
	"employee.skill":     "skill_name",
	"timesheet":          "name",
	"applicant":          "candidate_name",
	"expense":            "name",
	"shift":              "name",
	"insurance.benefit":  "name",
	"project.assignment": "role",
}

// archivable entities hide records with active=false.
var archivable = map[string]bool{
	"employee": true, "department": true, "job": true, "project": true, "task": true,
	"skill":    true, "applicant": true, "shift": true, "insurance.policy": true, "leave.type": true,
}

type stateWord struct {
	phrases []string
	states  []any
}

// stateWords maps status words to stored states per entity, checked in order.
var stateWords = map[string][]stateWord{
	"leave": {
		{[]string{"chờ duyệt lần 2", "chờ xác nhận"}, []any{"validate1"}},
		{[]string{"chờ duyệt", "chưa duyệt", "pending"}, []any{"confirm", "validate1"}},
		{[]string{"đã duyệt", "đã phê duyệt", "approved"}, []any{"validate"}},
		{[]string{"bị từ chối", "đã từ chối", "refused", "rejected"}, []any{"refuse"}},
		{[]string{"đã hủy", "cancelled", "canceled"}, []any{"cancel"}},
	},
	"leave.allocation": {
		{[]string{"chờ duyệt", "pending"}, []any{"confirm"}},
		{[]string{"đã duyệt", "approved"}, []any{"validate"}},
	},
	"expense": {
		{[]string{"chờ duyệt", "pending"}, []any{"reported"}},
		{[]string{"đã duyệt", "approved"}, []any{"approved"}},
		{[]string{"bị từ chối", "refused", "rejected"}, []any{"refused"}},
		{[]string{"nháp", "draft"}, []any{"draft"}},
	},
	"timesheet": {
		{[]string{"chờ duyệt", "pending"}, []any{"submitted"}},
		{[]string{"đã duyệt", "approved"}, []any{"approved"}},
		{[]string{"nháp", "draft"}, []any{"draft"}},
	},
	"payslip": {
		{[]string{"nháp", "draft"}, []any{"draft"}},
		{[]string{"chờ xác nhận", "to verify"}, []any{"verify"}},
		{[]string{"đã xác nhận", "hoàn thành", "done"}, []any{"done"}},
	},
	"contract": {
		{[]string{"đang hiệu lực", "còn hiệu lực", "active", "running"}, []any{"open"}},
		{[]string{"hết hạn", "expired"}, []any{"close"}},
		{[]string{"đã hủy", "cancelled"}, []any{"cancel"}},
	},
	"job": {
		{[]string{"đang tuyển", "recruiting"}, []any{"recruit"}},
		{[]string{"đã đóng", "closed"}, []any{"closed"}},
	},
	"applicant": {
		{[]string{"mới", "new"}, []any{"new"}},
		{[]string{"phỏng vấn", "interview"}, []any{"interview"}},
		{[]string{"đã tuyển", "hired"}, []any{"hired"}},
		{[]string{"bị từ chối", "refused"}, []any{"refused"}},
	},
	"task": {
		{[]string{"đang mở", "open"}, []any{"open"}},
		{[]string{"hoàn thành", "done"}, []any{"done"}},
	},
}

var archivedWords = []string{"đã nghỉ việc", "nghỉ việc", "lưu trữ", "archived", "inactive"}

var leaveTypes = []struct {
	phrases []string
	value   string
}{
	{[]string{"nghỉ ốm", "ốm", "sick"}, "sick"},
	{[]string{"không lương", "unpaid"}, "unpaid"},
	{[]string{"thai sản", "maternity"}, "maternity"},
	{[]string{"phép năm", "annual"}, "annual"},
}

var policyTypes = []struct {
	phrases []string
	value   string
}{
	{[]string{"bhxh", "xã hội", "social"}, "BHXH"},
	{[]string{"bhyt", "y tế", "health"}, "BHYT"},
	{[]string{"bhtn", "thất nghiệp", "unemployment"}, "BHTN"},
}

var skillLevels = []struct {
	phrases []string
	value   string
}{
	{[]string{"chuyên gia", "expert"}, "expert"},
	{[]string{"nâng cao", "advanced"}, "advanced"},
	{[]string{"trung bình", "intermediate"}, "intermediate"},
	{[]string{"cơ bản", "beginner", "basic"}, "beginner"},
}

// reportTypes maps entity words to export report types.
var reportTypes = []struct {
	phrases []string
	value   string
}{
	{[]string{"chấm công", "attendance"}, "attendances"},
	{[]string{"nghỉ phép", "leave"}, "leaves"},
	{[]string{"phiếu lương", "bảng lương", "payslip", "payroll", "lương"}, "payslips"},
	{[]string{"hợp đồng", "contract"}, "contracts"},
	{[]string{"timesheet", "chấm giờ"}, "timesheets"},
	{[]string{"chi phí", "expense"}, "expenses"},
	{[]string{"ứng viên", "applicant"}, "applicants"},
	{[]string{"dự án", "project"}, "projects"},
	{[]string{"phòng ban", "department"}, "departments"},
	{[]string{"vị trí", "job"}, "jobs"},
	{[]string{"nhân viên", "employee", "nhân sự"}, "employees"},
}
