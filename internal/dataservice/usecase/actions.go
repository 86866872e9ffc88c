package usecase

import (
	"context"
	"fmt"

	"hr-agent/internal/dataservice"
)

// Social, health and unemployment insurance withheld from the employee.
const employeeInsuranceRate = 0.105

// transition moves a record's state. An empty from accepts any state; a record
// already in the target state is returned unchanged.
type transition struct {
	from []string
	to   string
}

var transitions = map[string]transition{
	"leave:approve":            {from: []string{"confirm"}, to: "validate1"},
	"leave:validate":           {from: []string{"validate1"}, to: "validate"},
	"leave:refuse":             {from: []string{"confirm", "validate1"}, to: "refuse"},
	"leave.allocation:approve": {from: []string{"confirm"}, to: "validate"},
	"job:open":                 {to: "recruit"},
	"job:close":                {to: "closed"},
	"payslip:validate":         {from: []string{"verify"}, to: "done"},
	"timesheet:submit":         {from: []string{"draft"}, to: "submitted"},
	"timesheet:approve":        {from: []string{"submitted"}, to: "approved"},
	"expense:submit":           {from: []string{"draft"}, to: "reported"},
	"expense:approve":          {from: []string{"reported"}, to: "approved"},
	"expense:refuse":           {from: []string{"reported"}, to: "refused"},
	"applicant:refuse":         {from: []string{"new", "qualification", "interview"}, to: "refused"},
}

type actionFunc func(uc *implUseCase, ctx context.Context, spec entitySpec, req dataservice.Request) (any, error)

var actions = map[string]actionFunc{
	"attendance:unlink":       (*implUseCase).unlink,
	"timesheet:unlink":        (*implUseCase).unlink,
	"attendance:checkin":      (*implUseCase).checkIn,
	"attendance:checkout":     (*implUseCase).checkOut,
	"contract:renew":          (*implUseCase).renewContract,
	"payslip:compute":         (*implUseCase).computePayslip,
	"payslip:copy":            (*implUseCase).copyPayslip,
	"applicant:hire":          (*implUseCase).hireApplicant,
	"task:assign":             (*implUseCase).assignTask,
	"employee:subordinates":   (*implUseCase).subordinates,
	"department:employees":    (*implUseCase).departmentEmployees,
	"contract:expiring":       (*implUseCase).expiringContracts,
	"attendance:report":       (*implUseCase).attendanceReport,
	"leave:summary":           (*implUseCase).leaveSummary,
	"payslip:summary":         (*implUseCase).payrollSummary,
	"timesheet:summary":       (*implUseCase).timesheetSummary,
	"insurance.policy:report": (*implUseCase).insuranceReport,
	"dashboard:stats":         (*implUseCase).dashboardStats,
	"search:search":           (*implUseCase).globalSearch,
	"report:headcount":        (*implUseCase).headcount,
	"report:turnover":         (*implUseCase).turnover,
	"report:export":           (*implUseCase).export,
}

func (uc *implUseCase) action(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	key := spec.name + ":" + req.Op.ActionName()
	if t, ok := transitions[key]; ok {
		return uc.transition(ctx, spec, req, t)
	}
	if fn, ok := actions[key]; ok {
		return fn(uc, ctx, spec, req)
	}
	return nil, fmt.Errorf("%w: %s on %s", dataservice.ErrUnsupportedOp, req.Op, spec.name)
}

func (uc *implUseCase) transition(ctx context.Context, spec entitySpec, req dataservice.Request, t transition) (any, error) {
	rec, err := uc.get(ctx, spec, req)
	if err != nil {
		return nil, err
	}

	state := toString(rec.Vals["state"])
	if state == t.to {
		return rec.Map(), nil
	}
	if len(t.from) > 0 && !containsString(t.from, state) {
		return nil, fmt.Errorf("%w: %s %d is %q, %s needs one of %v",
			dataservice.ErrInvalidState, spec.name, rec.ID, state, req.Op.ActionName(), t.from)
	}

	vals := map[string]any{"state": t.to}
	for k, v := range req.Values {
		vals[k] = v
	}
	updated, err := uc.repo.Update(ctx, spec.name, rec.ID, vals)
	if err != nil {
		return nil, err
	}
	return updated.Map(), nil
}

func (uc *implUseCase) checkIn(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	employeeID, ok := req.PathIDs["employee_id"]
	if !ok {
		return nil, fmt.Errorf("%w: employee_id", dataservice.ErrMissingValue)
	}
	if _, err := uc.repo.Get(ctx, "employee", employeeID); err != nil {
		return nil, err
	}

	open, err := uc.openAttendance(ctx, spec, employeeID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, fmt.Errorf("%w: employee %d since %v", dataservice.ErrAlreadyCheckedIn, employeeID, open["check_in"])
	}

	now := uc.now().In(uc.dates.Location())
	rec, err := uc.repo.Insert(ctx, spec.name, map[string]any{
		"employee_id": employeeID,
		"check_in":    now.Format(dateTimeLayout),
	})
	if err != nil {
		return nil, err
	}
	return rec.Map(), nil
}

func (uc *implUseCase) checkOut(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	employeeID, ok := req.PathIDs["employee_id"]
	if !ok {
		return nil, fmt.Errorf("%w: employee_id", dataservice.ErrMissingValue)
	}

	open, err := uc.openAttendance(ctx, spec, employeeID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("%w: employee %d", dataservice.ErrNotCheckedIn, employeeID)
	}

	loc := uc.dates.Location()
	now := uc.now().In(loc)
	hours := 0.0
	if in, err := timeIn(toString(open["check_in"]), loc); err == nil {
		hours = round(now.Sub(in).Hours(), 2)
	}

	id, _ := toInt64(open["id"])
	rec, err := uc.repo.Update(ctx, spec.name, id, map[string]any{
		"check_out":    now.Format(dateTimeLayout),
		"worked_hours": hours,
	})
	if err != nil {
		return nil, err
	}
	return rec.Map(), nil
}

// openAttendance returns the employee's attendance without check_out, if any.
func (uc *implUseCase) openAttendance(ctx context.Context, spec entitySpec, employeeID int64) (map[string]any, error) {
	rows, err := uc.records(ctx, spec, dataservice.Cond("employee_id", "=", employeeID))
	if err != nil {
		return nil, err
	}
	for i := len(rows) - 1; i >= 0; i-- {
		if toString(rows[i]["check_out"]) == "" {
			return rows[i], nil
		}
	}
	return nil, nil
}

func (uc *implUseCase) renewContract(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	rec, err := uc.get(ctx, spec, req)
	if err != nil {
		return nil, err
	}
	if state := toString(rec.Vals["state"]); state == "cancel" {
		return nil, fmt.Errorf("%w: contract %d is cancelled", dataservice.ErrInvalidState, rec.ID)
	}

	loc := uc.dates.Location()
	vals := map[string]any{"state": "open"}
	if end, ok := req.Values["date_end"]; ok {
		vals["date_end"] = end
	} else {
		base := uc.today()
		if end, ok := parseDate(toString(rec.Vals["date_end"]), loc); ok {
			base = end
		}
		vals["date_end"] = base.AddDate(1, 0, 0).Format(dateLayout)
	}
	if wage, ok := req.Values["wage"]; ok {
		vals["wage"] = wage
	}

	updated, err := uc.repo.Update(ctx, spec.name, rec.ID, vals)
	if err != nil {
		return nil, err
	}
	return updated.Map(), nil
}

// computePayslip sets net_wage = basic + allowance - deduction - employee insurance.
// The basic wage falls back to the linked contract's wage.
func (uc *implUseCase) computePayslip(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	rec, err := uc.get(ctx, spec, req)
	if err != nil {
		return nil, err
	}
	if state := toString(rec.Vals["state"]); state != "draft" && state != "verify" {
		return nil, fmt.Errorf("%w: payslip %d is %q", dataservice.ErrInvalidState, rec.ID, state)
	}

	basic := number(rec.Vals["basic_wage"])
	if basic == 0 {
		if contractID, ok := toInt64(rec.Vals["contract_id"]); ok {
			if c, err := uc.repo.Get(ctx, "contract", contractID); err == nil {
				basic = number(c.Vals["wage"])
			}
		}
	}
	allowance := number(rec.Vals["allowance"])
	deduction := number(rec.Vals["deduction"])
	insurance := round(basic*employeeInsuranceRate, 0)

	updated, err := uc.repo.Update(ctx, spec.name, rec.ID, map[string]any{
		"basic_wage":         basic,
		"insurance_employee": insurance,
		"gross_wage":         basic + allowance,
		"net_wage":           basic + allowance - deduction - insurance,
		"state":              "verify",
	})
	if err != nil {
		return nil, err
	}
	return updated.Map(), nil
}

func (uc *implUseCase) copyPayslip(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	rec, err := uc.get(ctx, spec, req)
	if err != nil {
		return nil, err
	}

	vals := rec.Map()
	delete(vals, "id")
	for _, k := range []string{"net_wage", "gross_wage", "insurance_employee"} {
		delete(vals, k)
	}
	vals["state"] = "draft"
	vals["name"] = toString(rec.Vals["name"]) + " (copy)"

	cp, err := uc.repo.Insert(ctx, spec.name, vals)
	if err != nil {
		return nil, err
	}
	return cp.Map(), nil
}

// hireApplicant marks the applicant hired and creates the matching employee.
func (uc *implUseCase) hireApplicant(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	rec, err := uc.get(ctx, spec, req)
	if err != nil {
		return nil, err
	}
	switch toString(rec.Vals["state"]) {
	case "hired":
		return map[string]any{"applicant": rec.Map(), "employee_id": rec.Vals["employee_id"]}, nil
	case "refused":
		return nil, fmt.Errorf("%w: applicant %d was refused", dataservice.ErrInvalidState, rec.ID)
	}

	emp := map[string]any{"active": true, "name": rec.Vals["partner_name"]}
	for from, to := range map[string]string{"email_from": "work_email", "partner_phone": "mobile_phone", "job_id": "job_id"} {
		if v, ok := rec.Vals[from]; ok {
			emp[to] = v
		}
	}
	if jobID, ok := toInt64(rec.Vals["job_id"]); ok {
		if job, err := uc.repo.Get(ctx, "job", jobID); err == nil {
			emp["job_title"] = job.Vals["name"]
			if dep, ok := job.Vals["department_id"]; ok {
				emp["department_id"] = dep
			}
		}
	}
	employee, err := uc.repo.Insert(ctx, "employee", emp)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, spec.name, rec.ID, map[string]any{"state": "hired", "employee_id": employee.ID})
	if err != nil {
		return nil, err
	}
	return map[string]any{"applicant": updated.Map(), "employee_id": employee.ID}, nil
}

func (uc *implUseCase) assignTask(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	employeeID, ok := req.Values["employee_id"]
	if !ok {
		return nil, fmt.Errorf("%w: employee_id", dataservice.ErrMissingValue)
	}
	id, err := ownID(spec, req)
	if err != nil {
		return nil, err
	}

	rec, err := uc.repo.Update(ctx, spec.name, id, map[string]any{"employee_id": employeeID})
	if err != nil {
		return nil, err
	}
	return rec.Map(), nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
