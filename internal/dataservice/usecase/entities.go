package usecase

import "hr-agent/internal/dataservice"

// entitySpec describes how the engine stores one entity.
type entitySpec struct {
	name       string
	idKey      string         // path param naming the record's own id
	dateField  string         // canonical date field for period filters
	nameField  string         // display name, used by search and export
	defaults   map[string]any // values set on create when absent
	archivable bool           // soft-deleted through active=false; hidden from lists by default
	virtual    bool           // no records, actions only
}

var entities = map[string]entitySpec{
	"employee":           {idKey: "employee_id", nameField: "name", defaults: map[string]any{"active": true}, archivable: true},
	"department":         {idKey: "department_id", nameField: "name", defaults: map[string]any{"active": true}, archivable: true},
	"job":                {idKey: "job_id", nameField: "name", defaults: map[string]any{"active": true, "state": "recruit", "no_of_recruitment": 1}, archivable: true},
	"contract":           {idKey: "contract_id", nameField: "name", defaults: map[string]any{"state": "open"}},
	"attendance":         {idKey: "attendance_id"},
	"leave":              {idKey: "leave_id", nameField: "name", defaults: map[string]any{"state": "confirm"}},
	"leave.type":         {idKey: "leave_type_id", nameField: "name", defaults: map[string]any{"active": true}, archivable: true},
	"leave.allocation":   {idKey: "allocation_id", nameField: "name", defaults: map[string]any{"state": "confirm"}},
	"payslip":            {idKey: "payslip_id", nameField: "name", defaults: map[string]any{"state": "draft"}},
	"payslip.run":        {idKey: "payslip_run_id", nameField: "name", defaults: map[string]any{"state": "draft"}},
	"insurance.policy":   {idKey: "policy_id", nameField: "policy_number", defaults: map[string]any{"active": true}, archivable: true},
	"insurance.payment":  {idKey: "payment_id"},
	"insurance.benefit":  {idKey: "benefit_id", nameField: "name"},
	"project":            {idKey: "project_id", nameField: "name", defaults: map[string]any{"active": true}, archivable: true},
	"project.assignment": {idKey: "assignment_id"},
	"task":               {idKey: "task_id", nameField: "name", defaults: map[string]any{"active": true, "state": "open"}, archivable: true},
	"skill":              {idKey: "skill_id", nameField: "name", defaults: map[string]any{"active": true}, archivable: true},
	"employee.skill":     {idKey: "employee_skill_id", nameField: "skill_name"},
	"timesheet":          {idKey: "timesheet_id", nameField: "name", defaults: map[string]any{"state": "draft"}},
	"applicant":          {idKey: "applicant_id", nameField: "partner_name", defaults: map[string]any{"active": true, "state": "new"}, archivable: true},
	"recruitment.stage":  {idKey: "stage_id", nameField: "name"},
	"expense":            {idKey: "expense_id", nameField: "name", defaults: map[string]any{"state": "draft"}},
	"expense.sheet":      {idKey: "sheet_id", nameField: "name", defaults: map[string]any{"state": "draft"}},
	"shift":              {idKey: "shift_id", nameField: "name", defaults: map[string]any{"active": true}, archivable: true},
	"shift.assignment":   {idKey: "shift_assignment_id"},

	"dashboard": {virtual: true},
	"search":    {virtual: true},
	"report":    {virtual: true},
}

func lookupEntity(name string) (entitySpec, bool) {
	spec, ok := entities[name]
	spec.name = name
	spec.dateField = dataservice.DateFields[name]
	return spec, ok
}
