package router

import "hr-agent/internal/catalog"

var (
	actApprove  = catalog.Action("approve")
	actRefuse   = catalog.Action("refuse")
	actValidate = catalog.Action("validate")
	actAssign   = catalog.Action("assign")
	actSubmit   = catalog.Action("submit")
	actHire     = catalog.Action("hire")
	actCompute  = catalog.Action("compute")
	actCopy     = catalog.Action("copy")
	actOpen     = catalog.Action("open")
	actClose    = catalog.Action("close")
	actRenew    = catalog.Action("renew")
)

// verbPhrases is the shared keyword vocabulary per verb.
var verbPhrases = map[catalog.Verb][]string{
	catalog.VerbUpdate: {"cập nhật", "chỉnh sửa", "sửa", "thay đổi", "đổi", "update", "edit", "modify", "change"},
	catalog.VerbDelete: {"xóa", "xoá", "hủy", "huỷ", "delete", "remove", "cancel"},
	catalog.VerbCreate: {"tạo", "thêm", "đăng ký", "ghi nhận", "create", "add ", "register"},
	catalog.VerbRead:   {"chi tiết", "thông tin", "detail"},
	catalog.VerbList:   {"danh sách", "liệt kê", "hiển thị", "tất cả", "xem", "list", "show"},

	actValidate: {"phê duyệt lần 2", "duyệt lần 2", "xác nhận", "validate", "confirm"},
	actApprove:  {"phê duyệt", "duyệt", "chấp thuận", "approve"},
	actRefuse:   {"từ chối", "refuse", "reject"},
	actAssign:   {"phân công", "giao cho", "giao việc", "assign"},
	actSubmit:   {"gửi duyệt", "nộp", "submit"},
	actHire:     {"tuyển ứng viên", "nhận việc", "tiếp nhận", "hire"},
	actCompute:  {"tính lương", "tính toán", "compute", "calculate"},
	actCopy:     {"sao chép", "nhân bản", "copy", "duplicate"},
	actOpen:     {"mở tuyển", "mở lại", "mở", "open"},
	actClose:    {"đóng tuyển", "dừng tuyển", "đóng", "close"},
	actRenew:    {"gia hạn", "renew", "extend"},
}

// statusPhrases name record states per entity. They hide verb look-alikes such
// as "duyệt" in "chờ duyệt" or "approve" in "approved".
var statusPhrases = map[string][]string{
	"leave": {
		"chờ duyệt lần 2", "chờ xác nhận", "chờ duyệt", "chưa duyệt", "pending",
		"đã duyệt", "đã phê duyệt", "approved", "bị từ chối", "đã từ chối", "refused", "rejected",
		"đã hủy", "đã huỷ", "cancelled", "canceled",
	},
	"leave.allocation": {"chờ duyệt", "chưa duyệt", "pending", "đã duyệt", "đã phê duyệt", "approved"},
	"expense": {
		"chờ duyệt", "chưa duyệt", "pending", "đã duyệt", "đã phê duyệt", "approved",
		"bị từ chối", "đã từ chối", "refused", "rejected", "đã nộp", "submitted", "nháp", "draft",
	},
	"timesheet": {
		"chờ duyệt", "chưa duyệt", "pending", "đã duyệt", "đã phê duyệt", "approved",
		"đã nộp", "submitted", "nháp", "draft",
	},
	"payslip": {
		"nháp", "draft", "chờ xác nhận", "to verify", "đã xác nhận", "đã duyệt", "đã phê duyệt",
		"chờ duyệt", "hoàn thành", "done",
	},
	"contract": {"đang hiệu lực", "còn hiệu lực", "active", "running", "hết hạn", "expired", "đã hủy", "đã huỷ", "cancelled"},
	"job":       {"đang tuyển", "recruiting", "đang mở", "đã đóng", "closed"},
	"applicant": {"mới", "new", "phỏng vấn", "interview", "đã tuyển", "hired", "bị từ chối", "đã từ chối", "refused", "rejected"},
	"task":      {"đang mở", "open", "hoàn thành", "done"},
}

// kw builds a bucket from the shared vocabulary, with rule-specific phrases first.
func kw(v catalog.Verb, extra ...string) VerbKeywords {
	phrases := make([]string, 0, len(extra)+len(verbPhrases[v]))
	phrases = append(phrases, extra...)
	phrases = append(phrases, verbPhrases[v]...)
	return VerbKeywords{Verb: v, Phrases: phrases}
}

func verbs(vs ...catalog.Verb) []VerbKeywords {
	out := make([]VerbKeywords, 0, len(vs))
	for _, v := range vs {
		out = append(out, kw(v))
	}
	return out
}

var crud = []catalog.Verb{catalog.VerbUpdate, catalog.VerbDelete, catalog.VerbCreate, catalog.VerbRead, catalog.VerbList}

func crudAnd(actions ...catalog.Verb) []VerbKeywords {
	return verbs(append(append([]catalog.Verb{}, crud...), actions...)...)
}

func entityRule(name, entity string, priority int, topics []string, vks []VerbKeywords) PhraseRule {
	return PhraseRule{
		Name:          name,
		Entity:        entity,
		Topics:        topics,
		Verbs:         vks,
		StatusPhrases: statusPhrases[entity],
		DefaultVerb:   catalog.VerbList,
		Priority:      priority,
	}
}

func actionRule(name, entity string, priority int, action string, topics ...string) PhraseRule {
	return PhraseRule{
		Name:        name,
		Entity:      entity,
		Topics:      topics,
		DefaultVerb: catalog.Action(action),
		Priority:    priority,
	}
}

// DefaultRules is the built-in phrase table in declaration order.
func DefaultRules() []PhraseRule {
	return []PhraseRule{
		// Broad topics
		entityRule("employee", "employee", PriorityEmployee,
			[]string{"nhân viên", "nhân sự", "employee", "staff"}, verbs(crud...)),
		entityRule("department", "department", PriorityEmployee,
			[]string{"phòng ban", "bộ phận", "department"}, verbs(crud...)),
		actionRule("dashboard", "dashboard", PriorityOverview, "stats",
			"tổng quan", "thống kê", "dashboard", "overview"),
		actionRule("search", "search", PrioritySearch, "search",
			"tìm kiếm", "tra cứu", "tìm", "search", "find "),

		// Entities
		entityRule("job", "job", PriorityEntity,
			[]string{"vị trí", "tuyển dụng", "chức danh", "job", "position"},
			crudAnd(actOpen, actClose)),
		entityRule("contract", "contract", PriorityEntity,
			[]string{"hợp đồng", "contract"}, crudAnd(actRenew)),
		entityRule("attendance", "attendance", PriorityEntity,
			[]string{"chấm công", "attendance"}, verbs(crud...)),
		entityRule("leave", "leave", PriorityEntity,
			[]string{"nghỉ phép", "đơn nghỉ", "xin nghỉ", "leave"},
			[]VerbKeywords{
				kw(catalog.VerbUpdate), kw(catalog.VerbDelete),
				kw(catalog.VerbCreate, "xin nghỉ", "request leave"),
				kw(actValidate), kw(actApprove), kw(actRefuse),
				kw(catalog.VerbRead), kw(catalog.VerbList),
			}),
		entityRule("payslip", "payslip", PriorityEntity,
			[]string{"phiếu lương", "bảng lương", "tính lương", "payslip"},
			[]VerbKeywords{
				kw(catalog.VerbUpdate), kw(catalog.VerbDelete), kw(catalog.VerbCreate),
				kw(actCompute), kw(actValidate, "phê duyệt", "duyệt"), kw(actCopy),
				kw(catalog.VerbRead), kw(catalog.VerbList),
			}),
		entityRule("insurance", "insurance.policy", PriorityEntity,
			[]string{"bảo hiểm", "bhxh", "bhyt", "bhtn", "insurance"}, verbs(crud...)),
		entityRule("project", "project", PriorityEntity,
			[]string{"dự án", "project"}, verbs(crud...)),
		entityRule("task", "task", PriorityEntity,
			[]string{"công việc", "nhiệm vụ", "task"}, crudAnd(actAssign)),
		entityRule("skill", "skill", PriorityEntity,
			[]string{"kỹ năng", "kĩ năng", "skill"},
			verbs(catalog.VerbDelete, catalog.VerbCreate, catalog.VerbList)),
		entityRule("timesheet", "timesheet", PriorityEntity,
			[]string{"bảng chấm giờ", "giờ làm", "ghi giờ", "timesheet"},
			[]VerbKeywords{
				kw(catalog.VerbUpdate), kw(catalog.VerbDelete),
				kw(catalog.VerbCreate, "ghi giờ", "log giờ", "log hours"),
				kw(actSubmit), kw(actApprove),
				kw(catalog.VerbRead), kw(catalog.VerbList),
			}),
		entityRule("applicant", "applicant", PriorityEntity,
			[]string{"ứng viên", "applicant", "candidate"}, crudAnd(actHire, actRefuse)),
		entityRule("expense", "expense", PriorityEntity,
			[]string{"chi phí", "expense"}, crudAnd(actSubmit, actApprove, actRefuse)),
		entityRule("shift", "shift", PriorityEntity,
			[]string{"ca làm", "shift"},
			verbs(catalog.VerbUpdate, catalog.VerbDelete, catalog.VerbCreate, catalog.VerbList)),

		// Sub-entities
		entityRule("leave_type", "leave.type", PrioritySubEntity,
			[]string{"loại nghỉ", "loại phép", "leave type"},
			verbs(catalog.VerbCreate, catalog.VerbList)),
		entityRule("leave_allocation", "leave.allocation", PrioritySubEntity,
			[]string{"phân bổ phép", "phân bổ ngày nghỉ", "cấp phép", "allocation"},
			verbs(catalog.VerbCreate, actApprove, catalog.VerbList)),
		entityRule("payslip_run", "payslip.run", PrioritySubEntity,
			[]string{"đợt lương", "kỳ lương", "payslip run", "payroll batch"},
			verbs(catalog.VerbCreate, catalog.VerbList)),
		entityRule("insurance_payment", "insurance.payment", PrioritySubEntity,
			[]string{"đóng bảo hiểm", "thanh toán bảo hiểm", "insurance payment"},
			verbs(catalog.VerbCreate, catalog.VerbList)),
		entityRule("insurance_benefit", "insurance.benefit", PrioritySubEntity,
			[]string{"quyền lợi bảo hiểm", "chế độ bảo hiểm", "insurance benefit"},
			verbs(catalog.VerbCreate, catalog.VerbList)),
		entityRule("project_assignment", "project.assignment", PrioritySubEntity,
			[]string{"phân công dự án", "thành viên dự án", "vào dự án", "project assignment", "project member"},
			verbs(catalog.VerbCreate, catalog.VerbList)),
		entityRule("employee_skill", "employee.skill", PrioritySubEntity,
			[]string{"kỹ năng nhân viên", "kỹ năng của nhân viên", "kỹ năng cho nhân viên", "employee skill",
				"kỹ năng…cho nhân viên", "kỹ năng…của nhân viên", "skill…to employee"},
			verbs(catalog.VerbCreate, catalog.VerbList)),
		actionRule("department_employees", "department", PrioritySubEntity, "employees",
			"nhân viên phòng ban", "nhân viên của phòng ban", "nhân viên thuộc phòng ban",
			"nhân viên trong phòng ban", "department employee", "employees of department", "employees in department"),
		actionRule("subordinates", "employee", PrioritySubEntity, "subordinates",
			"cấp dưới", "dưới quyền", "subordinate", "direct report"),
		entityRule("recruitment_stage", "recruitment.stage", PrioritySubEntity,
			[]string{"giai đoạn tuyển dụng", "vòng tuyển dụng", "recruitment stage"},
			verbs(catalog.VerbList)),
		entityRule("expense_sheet", "expense.sheet", PrioritySubEntity,
			[]string{"bảng kê chi phí", "báo cáo chi phí", "expense sheet", "expense report"},
			verbs(catalog.VerbList)),
		entityRule("shift_assignment", "shift.assignment", PrioritySubEntity,
			[]string{"phân ca", "xếp ca", "lịch ca", "shift assignment"},
			[]VerbKeywords{
				kw(catalog.VerbCreate, "phân ca cho", "xếp ca cho", "assign shift"),
				kw(catalog.VerbList),
			}),

		// Special actions
		actionRule("checkin", "attendance", PrioritySpecial, "checkin",
			"check in", "check-in", "checkin", "chấm công vào", "vào ca"),
		actionRule("checkout", "attendance", PrioritySpecial, "checkout",
			"check out", "check-out", "checkout", "chấm công ra", "tan ca", "ra ca"),
		actionRule("leave_summary", "leave", PrioritySpecial, "summary",
			"tổng hợp nghỉ phép", "thống kê nghỉ phép", "leave summary"),
		actionRule("payroll_summary", "payslip", PrioritySpecial, "summary",
			"tổng hợp lương", "tổng lương", "thống kê lương", "payroll summary"),
		actionRule("timesheet_summary", "timesheet", PrioritySpecial, "summary",
			"tổng hợp giờ", "tổng giờ làm", "timesheet summary"),
		actionRule("attendance_report", "attendance", PrioritySpecial, "report",
			"báo cáo chấm công", "thống kê chấm công", "giờ công", "attendance report"),
		actionRule("insurance_report", "insurance.policy", PrioritySpecial, "report",
			"báo cáo bảo hiểm", "thống kê bảo hiểm", "tổng hợp bảo hiểm", "insurance report"),
		actionRule("contracts_expiring", "contract", PrioritySpecial, "expiring",
			"sắp hết hạn", "hết hạn", "expiring", "expire"),
		actionRule("headcount", "report", PrioritySpecial, "headcount",
			"số lượng nhân viên", "số nhân viên", "định biên", "headcount"),
		actionRule("turnover", "report", PrioritySpecial, "turnover",
			"nghỉ việc", "biến động nhân sự", "turnover"),
		actionRule("export", "report", PriorityExport, "export",
			"xuất báo cáo", "xuất dữ liệu", "export"),
	}
}
