package catalog

const basePath = "/api/hr"

type option func(*Route)

func fields(f ...string) option { return func(r *Route) { r.Fields = f } }

func extras(e ...string) option { return func(r *Route) { r.Extras = append(r.Extras, e...) } }

func requireExtras(e ...string) option {
	return func(r *Route) { r.RequiredExtras = e }
}

func filtered() option { return func(r *Route) { r.Filters = true } }

func soft(field string, value any) option {
	return func(r *Route) { r.SoftDelete = &SoftDelete{Field: field, Value: value} }
}

func summary(s string) option { return func(r *Route) { r.Summary = s } }

// aliases takes extractor/store pairs: aliases("expected_employees", "no_of_recruitment").
func aliases(pairs ...string) option {
	return func(r *Route) {
		r.Aliases = make(map[string]string, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			r.Aliases[pairs[i]] = pairs[i+1]
		}
	}
}

// body takes the required keys and a list of key/type pairs.
func body(required []string, typePairs ...string) option {
	return func(r *Route) {
		s := &BodySchema{Required: required, Types: make(map[string]string, len(typePairs)/2)}
		for i := 0; i+1 < len(typePairs); i += 2 {
			s.Types[typePairs[i]] = typePairs[i+1]
		}
		r.Body = s
	}
}

func route(id string, method Method, path, entity string, verb Verb, opts ...option) Route {
	r := Route{
		ID:     id,
		Path:   basePath + path,
		Method: method,
		Entity: entity,
		Verb:   verb,
	}
	r.PathParams = r.Holes()
	for _, o := range opts {
		o(&r)
	}
	return r
}

var (
	listExtras   = extras("limit", "fields")
	periodExtras = extras("date_from", "date_to", "date", "month", "year", "period")

	employeeFields = []string{
		"name", "work_email", "mobile_phone", "work_phone", "job_title", "job_id",
		"department_id", "department_name", "parent_id", "gender", "birthday",
		"identification_id", "address",
	}
	employeeAliases = aliases("email", "work_email", "phone", "mobile_phone", "manager_id", "parent_id")

	departmentFields = []string{"name", "manager_id", "parent_id", "note"}
	jobFields        = []string{"name", "department_id", "department_name", "no_of_recruitment", "description"}
	jobAliases       = aliases("expected_employees", "no_of_recruitment", "title", "name")
	contractFields   = []string{"name", "employee_id", "wage", "date_start", "date_end", "job_id", "department_id", "contract_type"}
	attendanceFields = []string{"employee_id", "check_in", "check_out"}
	leaveFields      = []string{"employee_id", "leave_type", "holiday_status_id", "date_from", "date_to", "number_of_days", "name"}
	leaveAliases     = aliases("reason", "name", "days", "number_of_days")
	leaveTypeFields  = []string{"name", "max_days", "requires_allocation"}
	allocationFields = []string{"employee_id", "leave_type", "holiday_status_id", "number_of_days", "date_from", "date_to", "name"}
	payslipFields    = []string{"employee_id", "contract_id", "payslip_run_id", "date_from", "date_to", "basic_wage", "allowance", "deduction", "name"}
	payslipAliases   = aliases("wage", "basic_wage")
	payslipRunFields = []string{"name", "date_start", "date_end"}
	policyFields     = []string{"employee_id", "policy_type", "policy_number", "salary_base", "rate", "date_start", "date_end"}
	paymentFields    = []string{"employee_id", "policy_id", "amount", "date", "period"}
	benefitFields    = []string{"employee_id", "policy_id", "benefit_type", "amount", "date", "name"}
	projectFields    = []string{"name", "description", "manager_id", "department_id", "date_start", "date_end"}
	assignmentFields = []string{"project_id", "employee_id", "role", "allocation", "date_start"}
	taskFields       = []string{"name", "project_id", "employee_id", "date_deadline", "priority", "description"}
	skillFields      = []string{"name", "skill_type"}
	empSkillFields   = []string{"skill_id", "skill_name", "level"}
	timesheetFields  = []string{"employee_id", "project_id", "task_id", "date", "unit_amount", "name"}
	timesheetAliases = aliases("hours", "unit_amount")
	applicantFields  = []string{"partner_name", "email_from", "partner_phone", "job_id", "salary_expected", "name"}
	applicantAliases = aliases("email", "email_from", "phone", "partner_phone", "candidate_name", "partner_name")
	expenseFields    = []string{"name", "employee_id", "total_amount", "date", "category", "description"}
	expenseAliases   = aliases("amount", "total_amount")
	shiftFields      = []string{"name", "hour_from", "hour_to", "days"}
	shiftAsgFields   = []string{"shift_id", "employee_id", "date", "date_to"}
)

// Routes returns the full route table in declaration order.
func Routes() []Route {
	return []Route{
		// Employees
		route("employees.list", MethodGet, "/employees", "employee", VerbList, filtered(), listExtras, summary("List employees")),
		route("employees.create", MethodPost, "/employees", "employee", VerbCreate, fields(employeeFields...), employeeAliases,
			body([]string{"name"}, "name", "string", "work_email", "string", "department_id", "integer", "parent_id", "integer"),
			summary("Create an employee")),
		route("employees.read", MethodGet, "/employees/{employee_id}", "employee", VerbRead, extras("fields"), summary("Employee detail")),
		route("employees.update", MethodPut, "/employees/{employee_id}", "employee", VerbUpdate, fields(employeeFields...), employeeAliases,
			body(nil, "name", "string", "work_email", "string", "department_id", "integer"), summary("Update an employee")),
		route("employees.delete", MethodDelete, "/employees/{employee_id}", "employee", VerbDelete, soft("active", false), summary("Archive an employee")),
		route("employees.subordinates", MethodGet, "/employees/{employee_id}/subordinates", "employee", Action("subordinates"), summary("Direct reports of an employee")),
		route("employees.skills.list", MethodGet, "/employees/{employee_id}/skills", "employee.skill", VerbList, summary("Skills of an employee")),
		route("employees.skills.add", MethodPost, "/employees/{employee_id}/skills", "employee.skill", VerbCreate, fields(empSkillFields...),
			body(nil, "skill_id", "integer", "skill_name", "string", "level", "string"), summary("Add a skill to an employee")),

		// Departments
		route("departments.list", MethodGet, "/departments", "department", VerbList, filtered(), listExtras, summary("List departments")),
		route("departments.create", MethodPost, "/departments", "department", VerbCreate, fields(departmentFields...),
			body([]string{"name"}, "name", "string", "manager_id", "integer"), summary("Create a department")),
		route("departments.read", MethodGet, "/departments/{department_id}", "department", VerbRead, extras("fields"), summary("Department detail")),
		route("departments.update", MethodPut, "/departments/{department_id}", "department", VerbUpdate, fields(departmentFields...),
			body(nil, "name", "string", "manager_id", "integer"), summary("Update a department")),
		route("departments.delete", MethodDelete, "/departments/{department_id}", "department", VerbDelete, soft("active", false), summary("Archive a department")),
		route("departments.employees", MethodGet, "/departments/{department_id}/employees", "department", Action("employees"), listExtras, summary("Employees of a department")),

		// Jobs
		route("jobs.list", MethodGet, "/jobs", "job", VerbList, filtered(), listExtras, summary("List job positions")),
		route("jobs.create", MethodPost, "/jobs", "job", VerbCreate, fields(jobFields...), jobAliases,
			body([]string{"name"}, "name", "string", "department_id", "integer", "no_of_recruitment", "integer"), summary("Create a job position")),
		route("jobs.read", MethodGet, "/jobs/{job_id}", "job", VerbRead, extras("fields"), summary("Job position detail")),
		route("jobs.update", MethodPut, "/jobs/{job_id}", "job", VerbUpdate, fields(jobFields...), jobAliases,
			body(nil, "name", "string", "no_of_recruitment", "integer"), summary("Update a job position")),
		route("jobs.delete", MethodDelete, "/jobs/{job_id}", "job", VerbDelete, soft("active", false), summary("Archive a job position")),
		route("jobs.open", MethodPost, "/jobs/{job_id}/open", "job", Action("open"), summary("Start recruiting for a position")),
		route("jobs.close", MethodPost, "/jobs/{job_id}/close", "job", Action("close"), summary("Stop recruiting for a position")),

		// Contracts
		route("contracts.list", MethodGet, "/contracts", "contract", VerbList, filtered(), listExtras, summary("List contracts")),
		route("contracts.create", MethodPost, "/contracts", "contract", VerbCreate, fields(contractFields...), aliases("salary", "wage"),
			body([]string{"employee_id", "wage"}, "employee_id", "integer", "wage", "number", "date_start", "string"), summary("Create a contract")),
		route("contracts.read", MethodGet, "/contracts/{contract_id}", "contract", VerbRead, extras("fields"), summary("Contract detail")),
		route("contracts.update", MethodPut, "/contracts/{contract_id}", "contract", VerbUpdate, fields(contractFields...), aliases("salary", "wage"),
			body(nil, "wage", "number", "date_end", "string"), summary("Update a contract")),
		route("contracts.delete", MethodDelete, "/contracts/{contract_id}", "contract", VerbDelete, soft("state", "cancel"), summary("Cancel a contract")),
		route("contracts.renew", MethodPost, "/contracts/{contract_id}/renew", "contract", Action("renew"), fields("date_end", "wage"), summary("Renew a contract")),
		route("contracts.expiring", MethodGet, "/contracts/expiring", "contract", Action("expiring"), extras("days"), summary("Contracts expiring soon")),

		// Attendance
		route("attendances.list", MethodGet, "/attendances", "attendance", VerbList, filtered(), listExtras, summary("List attendance records")),
		route("attendances.create", MethodPost, "/attendances", "attendance", VerbCreate, fields(attendanceFields...),
			body([]string{"employee_id"}, "employee_id", "integer", "check_in", "string", "check_out", "string"), summary("Record attendance")),
		route("attendances.read", MethodGet, "/attendances/{attendance_id}", "attendance", VerbRead, summary("Attendance detail")),
		route("attendances.update", MethodPut, "/attendances/{attendance_id}", "attendance", VerbUpdate, fields(attendanceFields...), summary("Correct an attendance record")),
		route("attendances.delete", MethodDelete, "/attendances/{attendance_id}", "attendance", VerbDelete, summary("Remove an attendance record")),
		route("attendances.checkin", MethodPost, "/attendances/checkin/{employee_id}", "attendance", Action("checkin"), summary("Check an employee in")),
		route("attendances.checkout", MethodPost, "/attendances/checkout/{employee_id}", "attendance", Action("checkout"), summary("Check an employee out")),
		route("attendances.report", MethodGet, "/attendances/report", "attendance", Action("report"), filtered(), periodExtras, summary("Worked hours per employee")),

		// Leaves
		route("leaves.list", MethodGet, "/leaves", "leave", VerbList, filtered(), listExtras, summary("List leave requests")),
		route("leaves.create", MethodPost, "/leaves", "leave", VerbCreate, fields(leaveFields...), leaveAliases,
			body([]string{"employee_id", "date_from"}, "employee_id", "integer", "date_from", "string", "date_to", "string"), summary("Request leave")),
		route("leaves.read", MethodGet, "/leaves/{leave_id}", "leave", VerbRead, summary("Leave request detail")),
		route("leaves.update", MethodPut, "/leaves/{leave_id}", "leave", VerbUpdate, fields(leaveFields...), leaveAliases, summary("Update a leave request")),
		route("leaves.delete", MethodDelete, "/leaves/{leave_id}", "leave", VerbDelete, soft("state", "cancel"), summary("Cancel a leave request")),
		route("leaves.approve", MethodPost, "/leaves/{leave_id}/approve", "leave", Action("approve"), summary("Approve a leave request")),
		route("leaves.refuse", MethodPost, "/leaves/{leave_id}/refuse", "leave", Action("refuse"), fields("reason"), summary("Refuse a leave request")),
		route("leaves.validate", MethodPost, "/leaves/{leave_id}/validate", "leave", Action("validate"), summary("Second approval of a leave request")),
		route("leaves.summary", MethodGet, "/leaves/summary", "leave", Action("summary"), filtered(), periodExtras, summary("Leave totals by state")),
		route("leave_types.list", MethodGet, "/leave-types", "leave.type", VerbList, listExtras, summary("List leave types")),
		route("leave_types.create", MethodPost, "/leave-types", "leave.type", VerbCreate, fields(leaveTypeFields...),
			body([]string{"name"}, "name", "string", "max_days", "number"), summary("Create a leave type")),
		route("allocations.list", MethodGet, "/leave-allocations", "leave.allocation", VerbList, filtered(), listExtras, summary("List leave allocations")),
		route("allocations.create", MethodPost, "/leave-allocations", "leave.allocation", VerbCreate, fields(allocationFields...), aliases("days", "number_of_days"),
			body([]string{"employee_id", "number_of_days"}, "employee_id", "integer", "number_of_days", "number"), summary("Allocate leave days")),
		route("allocations.approve", MethodPost, "/leave-allocations/{allocation_id}/approve", "leave.allocation", Action("approve"), summary("Approve a leave allocation")),

		// Payroll
		route("payslips.list", MethodGet, "/payslips", "payslip", VerbList, filtered(), listExtras, summary("List payslips")),
		route("payslips.create", MethodPost, "/payslips", "payslip", VerbCreate, fields(payslipFields...), payslipAliases,
			body([]string{"employee_id"}, "employee_id", "integer", "basic_wage", "number", "date_from", "string"), summary("Create a payslip")),
		route("payslips.read", MethodGet, "/payslips/{payslip_id}", "payslip", VerbRead, summary("Payslip detail")),
		route("payslips.update", MethodPut, "/payslips/{payslip_id}", "payslip", VerbUpdate, fields(payslipFields...), payslipAliases, summary("Update a draft payslip")),
		route("payslips.delete", MethodDelete, "/payslips/{payslip_id}", "payslip", VerbDelete, soft("state", "cancel"), summary("Cancel a payslip")),
		route("payslips.compute", MethodPost, "/payslips/{payslip_id}/compute", "payslip", Action("compute"), summary("Compute net wage of a payslip")),
		route("payslips.validate", MethodPost, "/payslips/{payslip_id}/validate", "payslip", Action("validate"), summary("Confirm a payslip")),
		route("payslips.copy", MethodPost, "/payslips/{payslip_id}/copy", "payslip", Action("copy"), summary("Duplicate a payslip")),
		route("payslip_runs.list", MethodGet, "/payslip-runs", "payslip.run", VerbList, listExtras, summary("List payroll batches")),
		route("payslip_runs.create", MethodPost, "/payslip-runs", "payslip.run", VerbCreate, fields(payslipRunFields...),
			body([]string{"name"}, "name", "string"), summary("Create a payroll batch")),
		route("payroll.summary", MethodGet, "/payroll/summary", "payslip", Action("summary"), filtered(), periodExtras, summary("Payroll totals")),

		// Insurance
		route("insurance.list", MethodGet, "/insurance/policies", "insurance.policy", VerbList, filtered(), listExtras, summary("List insurance policies")),
		route("insurance.create", MethodPost, "/insurance/policies", "insurance.policy", VerbCreate, fields(policyFields...), aliases("type", "policy_type"),
			body([]string{"employee_id", "policy_type"}, "employee_id", "integer", "policy_type", "string", "salary_base", "number"), summary("Register an insurance policy")),
		route("insurance.read", MethodGet, "/insurance/policies/{policy_id}", "insurance.policy", VerbRead, summary("Insurance policy detail")),
		route("insurance.update", MethodPut, "/insurance/policies/{policy_id}", "insurance.policy", VerbUpdate, fields(policyFields...), summary("Update an insurance policy")),
		route("insurance.delete", MethodDelete, "/insurance/policies/{policy_id}", "insurance.policy", VerbDelete, soft("active", false), summary("Close an insurance policy")),
		route("insurance_payments.list", MethodGet, "/insurance/payments", "insurance.payment", VerbList, filtered(), listExtras, summary("List insurance payments")),
		route("insurance_payments.create", MethodPost, "/insurance/payments", "insurance.payment", VerbCreate, fields(paymentFields...),
			body([]string{"employee_id", "amount"}, "employee_id", "integer", "amount", "number"), summary("Record an insurance payment")),
		route("insurance_benefits.list", MethodGet, "/insurance/benefits", "insurance.benefit", VerbList, filtered(), listExtras, summary("List insurance benefits")),
		route("insurance_benefits.create", MethodPost, "/insurance/benefits", "insurance.benefit", VerbCreate, fields(benefitFields...),
			body([]string{"employee_id"}, "employee_id", "integer", "amount", "number"), summary("Record an insurance benefit")),
		route("insurance.report", MethodGet, "/insurance/report", "insurance.policy", Action("report"), periodExtras, summary("Policies by insurance type")),

		// Projects and tasks
		route("projects.list", MethodGet, "/projects", "project", VerbList, filtered(), listExtras, summary("List projects")),
		route("projects.create", MethodPost, "/projects", "project", VerbCreate, fields(projectFields...),
			body([]string{"name"}, "name", "string", "manager_id", "integer"), summary("Create a project")),
		route("projects.read", MethodGet, "/projects/{project_id}", "project", VerbRead, summary("Project detail")),
		route("projects.update", MethodPut, "/projects/{project_id}", "project", VerbUpdate, fields(projectFields...), summary("Update a project")),
		route("projects.delete", MethodDelete, "/projects/{project_id}", "project", VerbDelete, soft("active", false), summary("Archive a project")),
		route("project_assignments.list", MethodGet, "/projects/assignments", "project.assignment", VerbList, filtered(), listExtras, summary("List project assignments")),
		route("project_assignments.create", MethodPost, "/projects/assignments", "project.assignment", VerbCreate, fields(assignmentFields...),
			body([]string{"project_id", "employee_id"}, "project_id", "integer", "employee_id", "integer"), summary("Assign an employee to a project")),
		route("tasks.list", MethodGet, "/tasks", "task", VerbList, filtered(), listExtras, summary("List tasks")),
		route("tasks.create", MethodPost, "/tasks", "task", VerbCreate, fields(taskFields...),
			body([]string{"name"}, "name", "string", "project_id", "integer", "employee_id", "integer"), summary("Create a task")),
		route("tasks.read", MethodGet, "/tasks/{task_id}", "task", VerbRead, summary("Task detail")),
		route("tasks.update", MethodPut, "/tasks/{task_id}", "task", VerbUpdate, fields(taskFields...), summary("Update a task")),
		route("tasks.delete", MethodDelete, "/tasks/{task_id}", "task", VerbDelete, soft("active", false), summary("Archive a task")),
		route("tasks.assign", MethodPost, "/tasks/{task_id}/assign", "task", Action("assign"), fields("employee_id"),
			body([]string{"employee_id"}, "employee_id", "integer"), summary("Assign a task to an employee")),

		// Skills
		route("skills.list", MethodGet, "/skills", "skill", VerbList, filtered(), listExtras, summary("List skills")),
		route("skills.create", MethodPost, "/skills", "skill", VerbCreate, fields(skillFields...),
			body([]string{"name"}, "name", "string"), summary("Create a skill")),
		route("skills.delete", MethodDelete, "/skills/{skill_id}", "skill", VerbDelete, soft("active", false), summary("Archive a skill")),

		// Timesheets
		route("timesheets.list", MethodGet, "/timesheets", "timesheet", VerbList, filtered(), listExtras, summary("List timesheet lines")),
		route("timesheets.create", MethodPost, "/timesheets", "timesheet", VerbCreate, fields(timesheetFields...), timesheetAliases,
			body([]string{"employee_id", "unit_amount"}, "employee_id", "integer", "project_id", "integer", "unit_amount", "number"), summary("Log hours")),
		route("timesheets.read", MethodGet, "/timesheets/{timesheet_id}", "timesheet", VerbRead, summary("Timesheet line detail")),
		route("timesheets.update", MethodPut, "/timesheets/{timesheet_id}", "timesheet", VerbUpdate, fields(timesheetFields...), timesheetAliases, summary("Update a timesheet line")),
		route("timesheets.delete", MethodDelete, "/timesheets/{timesheet_id}", "timesheet", VerbDelete, summary("Remove a timesheet line")),
		route("timesheets.submit", MethodPost, "/timesheets/{timesheet_id}/submit", "timesheet", Action("submit"), summary("Submit a timesheet line")),
		route("timesheets.approve", MethodPost, "/timesheets/{timesheet_id}/approve", "timesheet", Action("approve"), summary("Approve a timesheet line")),
		route("timesheets.summary", MethodGet, "/timesheets/summary", "timesheet", Action("summary"), filtered(), periodExtras, summary("Hours by project")),

		// Recruitment
		route("applicants.list", MethodGet, "/applicants", "applicant", VerbList, filtered(), listExtras, summary("List applicants")),
		route("applicants.create", MethodPost, "/applicants", "applicant", VerbCreate, fields(applicantFields...), applicantAliases,
			body([]string{"partner_name"}, "partner_name", "string", "job_id", "integer", "email_from", "string"), summary("Register an applicant")),
		route("applicants.read", MethodGet, "/applicants/{applicant_id}", "applicant", VerbRead, summary("Applicant detail")),
		route("applicants.update", MethodPut, "/applicants/{applicant_id}", "applicant", VerbUpdate, fields(applicantFields...), applicantAliases, summary("Update an applicant")),
		route("applicants.delete", MethodDelete, "/applicants/{applicant_id}", "applicant", VerbDelete, soft("active", false), summary("Archive an applicant")),
		route("applicants.hire", MethodPost, "/applicants/{applicant_id}/hire", "applicant", Action("hire"), summary("Hire an applicant")),
		route("applicants.refuse", MethodPost, "/applicants/{applicant_id}/refuse", "applicant", Action("refuse"), fields("reason"), summary("Refuse an applicant")),
		route("recruitment_stages.list", MethodGet, "/recruitment/stages", "recruitment.stage", VerbList, summary("List recruitment stages")),

		// Expenses
		route("expenses.list", MethodGet, "/expenses", "expense", VerbList, filtered(), listExtras, summary("List expenses")),
		route("expenses.create", MethodPost, "/expenses", "expense", VerbCreate, fields(expenseFields...), expenseAliases,
			body([]string{"employee_id", "total_amount"}, "employee_id", "integer", "total_amount", "number", "name", "string"), summary("Record an expense")),
		route("expenses.read", MethodGet, "/expenses/{expense_id}", "expense", VerbRead, summary("Expense detail")),
		route("expenses.update", MethodPut, "/expenses/{expense_id}", "expense", VerbUpdate, fields(expenseFields...), expenseAliases, summary("Update an expense")),
		route("expenses.delete", MethodDelete, "/expenses/{expense_id}", "expense", VerbDelete, soft("state", "cancelled"), summary("Cancel an expense")),
		route("expenses.submit", MethodPost, "/expenses/{expense_id}/submit", "expense", Action("submit"), summary("Submit an expense")),
		route("expenses.approve", MethodPost, "/expenses/{expense_id}/approve", "expense", Action("approve"), summary("Approve an expense")),
		route("expenses.refuse", MethodPost, "/expenses/{expense_id}/refuse", "expense", Action("refuse"), fields("reason"), summary("Refuse an expense")),
		route("expense_sheets.list", MethodGet, "/expense-sheets", "expense.sheet", VerbList, filtered(), listExtras, summary("List expense reports")),

		// Shifts
		route("shifts.list", MethodGet, "/shifts", "shift", VerbList, listExtras, summary("List shifts")),
		route("shifts.create", MethodPost, "/shifts", "shift", VerbCreate, fields(shiftFields...),
			body([]string{"name"}, "name", "string", "hour_from", "number", "hour_to", "number"), summary("Create a shift")),
		route("shifts.update", MethodPut, "/shifts/{shift_id}", "shift", VerbUpdate, fields(shiftFields...), summary("Update a shift")),
		route("shifts.delete", MethodDelete, "/shifts/{shift_id}", "shift", VerbDelete, soft("active", false), summary("Archive a shift")),
		route("shift_assignments.list", MethodGet, "/shifts/assignments", "shift.assignment", VerbList, filtered(), listExtras, summary("List shift assignments")),
		route("shift_assignments.create", MethodPost, "/shifts/assignments", "shift.assignment", VerbCreate, fields(shiftAsgFields...),
			body([]string{"shift_id", "employee_id"}, "shift_id", "integer", "employee_id", "integer"), summary("Assign a shift")),

		// Overview, search and reports
		route("dashboard.stats", MethodGet, "/dashboard/stats", "dashboard", Action("stats"), periodExtras, summary("HR overview")),
		route("search.global", MethodPost, "/search", "search", Action("search"), extras("search_term", "limit"), requireExtras("search_term"), summary("Search across HR records")),
		route("reports.headcount", MethodGet, "/reports/headcount", "report", Action("headcount"), periodExtras, summary("Headcount by department")),
		route("reports.turnover", MethodGet, "/reports/turnover", "report", Action("turnover"), periodExtras, summary("Active versus archived employees")),
		route("reports.export", MethodPost, "/reports/export", "report", Action("export"), extras("report_type", "date_from", "date_to", "format"),
			requireExtras("report_type"), summary("Export records of one entity")),
	}
}
