package extractor

import (
	"context"

	"hr-agent/internal/catalog"
	"hr-agent/internal/dataservice"
)

// filterRefs maps the id nouns meaningful in list requests to the filtered field, per entity.
var filterRefs = map[string]map[string]string{
	"employee":           {"department_id": "department_id", "job_id": "job_id", "manager_id": "parent_id"},
	"job":                {"department_id": "department_id"},
	"contract":           {"employee_id": "employee_id", "department_id": "department_id"},
	"attendance":         {"employee_id": "employee_id"},
	"leave":              {"employee_id": "employee_id"},
	"leave.allocation":   {"employee_id": "employee_id"},
	"payslip":            {"employee_id": "employee_id", "payslip_run_id": "payslip_run_id"},
	"insurance.policy":   {"employee_id": "employee_id"},
	"insurance.payment":  {"employee_id": "employee_id", "policy_id": "policy_id"},
	"insurance.benefit":  {"employee_id": "employee_id", "policy_id": "policy_id"},
	"project":            {"department_id": "department_id", "manager_id": "manager_id"},
	"project.assignment": {"project_id": "project_id", "employee_id": "employee_id"},
	"task":               {"project_id": "project_id", "employee_id": "employee_id"},
	"timesheet":          {"employee_id": "employee_id", "project_id": "project_id", "task_id": "task_id"},
	"applicant":          {"job_id": "job_id"},
	"expense":            {"employee_id": "employee_id"},
	"expense.sheet":      {"employee_id": "employee_id"},
	"shift.assignment":   {"shift_id": "shift_id", "employee_id": "employee_id"},
}

// refOrder keeps filter construction deterministic.
var refOrder = []string{
	"employee_id", "department_id", "job_id", "manager_id", "project_id", "task_id",
	"shift_id", "policy_id", "payslip_run_id",
}

var departmentFiltered = map[string]bool{"employee": true, "job": true, "project": true, "contract": true}

func (e *implExtractor) filters(ctx context.Context, u *utterance, route catalog.Route) []dataservice.Condition {
	entity := route.Entity
	var conds []dataservice.Condition

	refs := filterRefs[entity]
	hasDept := false
	for _, noun := range refOrder {
		field, ok := refs[noun]
		if !ok {
			continue
		}
		if v, ok := u.ids.ref(noun); ok {
			conds = append(conds, dataservice.Cond(field, "=", v))
			hasDept = hasDept || noun == "department_id"
		}
	}

	if departmentFiltered[entity] && !hasDept {
		if name := departmentName(u); name != "" {
			if id, ok := e.lookupDepartment(ctx, name); ok {
				conds = append(conds, dataservice.Cond("department_id", "=", id))
			} else {
				conds = append(conds, dataservice.Cond("department_name", "ilike", name))
			}
		}
	}

	for _, sw := range stateWords[entity] {
		if containsAny(u.lower, sw.phrases) {
			if len(sw.states) == 1 {
				conds = append(conds, dataservice.Cond("state", "=", sw.states[0]))
			} else {
				conds = append(conds, dataservice.Cond("state", "in", sw.states))
			}
			break
		}
	}

	if archivable[entity] && containsAny(u.lower, archivedWords) {
		conds = append(conds, dataservice.Cond("active", "=", false))
	}

	if field, ok := nameFields[entity]; ok {
		if qs := u.otherQuotes(); len(qs) > 0 {
			conds = append(conds, dataservice.Cond(field, "ilike", qs[0].text))
		}
	}

	// Routes without period extras filter on the entity's canonical date field.
	if !route.AcceptsExtra("date_from") {
		if field := dataservice.DateFields[entity]; field != "" {
			if r, ok := e.rangeOf(u.dates, u.now); ok {
				if !r.From.IsZero() {
					conds = append(conds, dataservice.Cond(field, ">=", r.FromString()))
				}
				conds = append(conds, dataservice.Cond(field, "<", r.ToString()))
			}
		}
	}
	return conds
}
