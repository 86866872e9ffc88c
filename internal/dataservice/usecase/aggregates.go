package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"hr-agent/internal/dataservice"
	"hr-agent/pkg/datemath"
)

const defaultExpiringDays = 30

func (uc *implUseCase) entity(name string) entitySpec {
	spec, _ := lookupEntity(name)
	return spec
}

// allRecords lists an entity including archived rows.
func (uc *implUseCase) allRecords(ctx context.Context, name string) ([]map[string]any, error) {
	return uc.records(ctx, uc.entity(name), dataservice.Cond("active", "in", []any{true, false, nil}))
}

// names maps record ids of an entity to their display name.
func (uc *implUseCase) names(ctx context.Context, name string) (map[int64]string, error) {
	rows, err := uc.allRecords(ctx, name)
	if err != nil {
		return nil, err
	}
	field := uc.entity(name).nameField
	out := make(map[int64]string, len(rows))
	for _, r := range rows {
		id, _ := toInt64(r["id"])
		out[id] = toString(r[field])
	}
	return out, nil
}

// inPeriod keeps rows whose canonical date falls in r.
func inPeriod(rows []map[string]any, field string, r datemath.Range) []map[string]any {
	out := rows[:0:0]
	for _, row := range rows {
		if inRange(toString(row[field]), r) {
			out = append(out, row)
		}
	}
	return out
}

func (uc *implUseCase) periodRows(ctx context.Context, spec entitySpec, req dataservice.Request) ([]map[string]any, datemath.Range, bool, error) {
	conds := append([]dataservice.Condition{}, req.Filters...)
	for k, v := range foreignIDs(spec, req) {
		conds = append(conds, dataservice.Cond(k, "=", v))
	}
	rows, err := uc.records(ctx, spec, conds...)
	if err != nil {
		return nil, datemath.Range{}, false, err
	}
	r, ok := uc.period(req.Extras)
	if ok && spec.dateField != "" {
		rows = inPeriod(rows, spec.dateField, r)
	}
	return rows, r, ok, nil
}

func rangeFields(out map[string]any, r datemath.Range, ok bool) map[string]any {
	if ok {
		out["date_from"] = r.FromString()
		out["date_to"] = r.LastDayString()
	}
	return out
}

func (uc *implUseCase) dashboardStats(ctx context.Context, _ entitySpec, req dataservice.Request) (any, error) {
	count := func(entity string, conds ...dataservice.Condition) (int, []map[string]any, error) {
		rows, err := uc.records(ctx, uc.entity(entity), conds...)
		return len(rows), rows, err
	}

	employees, _, err := count("employee")
	if err != nil {
		return nil, err
	}
	departments, _, err := count("department")
	if err != nil {
		return nil, err
	}
	jobs, _, err := count("job", dataservice.Cond("state", "=", "recruit"))
	if err != nil {
		return nil, err
	}
	pendingLeaves, _, err := count("leave", dataservice.Cond("state", "in", []any{"confirm", "validate1"}))
	if err != nil {
		return nil, err
	}
	contracts, _, err := count("contract", dataservice.Cond("state", "=", "open"))
	if err != nil {
		return nil, err
	}
	applicants, _, err := count("applicant", dataservice.Cond("state", "not in", []any{"hired", "refused"}))
	if err != nil {
		return nil, err
	}
	_, attendances, err := count("attendance")
	if err != nil {
		return nil, err
	}

	r, ok := uc.period(req.Extras)
	if !ok {
		r = uc.dates.Day(uc.now())
	}
	attendances = inPeriod(attendances, "check_in", r)
	checkedIn := 0
	for _, a := range attendances {
		if toString(a["check_out"]) == "" {
			checkedIn++
		}
	}

	return rangeFields(map[string]any{
		"total_employees":   employees,
		"total_departments": departments,
		"recruiting_jobs":   jobs,
		"pending_leaves":    pendingLeaves,
		"active_contracts":  contracts,
		"open_applicants":   applicants,
		"attendances":       len(attendances),
		"checked_in_now":    checkedIn,
	}, r, true), nil
}

var searchGroups = []struct {
	key    string
	entity string
	fields []string
}{
	{"employees", "employee", []string{"name", "work_email", "job_title", "mobile_phone"}},
	{"departments", "department", []string{"name"}},
	{"jobs", "job", []string{"name", "description"}},
	{"applicants", "applicant", []string{"partner_name", "email_from"}},
	{"projects", "project", []string{"name", "description"}},
}

func (uc *implUseCase) globalSearch(ctx context.Context, _ entitySpec, req dataservice.Request) (any, error) {
	term := strings.TrimSpace(toString(req.Extras["search_term"]))
	if term == "" {
		return nil, fmt.Errorf("%w: search_term", dataservice.ErrMissingValue)
	}
	needle := strings.ToLower(term)

	out := map[string]any{"search_term": term}
	total := 0
	for _, g := range searchGroups {
		rows, err := uc.records(ctx, uc.entity(g.entity))
		if err != nil {
			return nil, err
		}
		hits := make([]map[string]any, 0)
		for _, row := range rows {
			for _, f := range g.fields {
				if strings.Contains(strings.ToLower(toString(row[f])), needle) {
					hits = append(hits, row)
					break
				}
			}
		}
		out[g.key] = hits
		total += len(hits)
	}
	out["total"] = total
	return out, nil
}

func (uc *implUseCase) attendanceReport(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	rows, r, ok, err := uc.periodRows(ctx, spec, req)
	if err != nil {
		return nil, err
	}
	if !ok {
		now := uc.now().In(uc.dates.Location())
		r, ok = uc.dates.Month(now.Year(), now.Month()), true
		rows = inPeriod(rows, spec.dateField, r)
	}
	names, err := uc.names(ctx, "employee")
	if err != nil {
		return nil, err
	}

	type agg struct {
		days  map[string]bool
		hours float64
		count int
	}
	byEmp := map[int64]*agg{}
	total := 0.0
	for _, row := range rows {
		id, _ := toInt64(row["employee_id"])
		a, ok := byEmp[id]
		if !ok {
			a = &agg{days: map[string]bool{}}
			byEmp[id] = a
		}
		if in := toString(row["check_in"]); len(in) >= len(dateLayout) {
			a.days[in[:len(dateLayout)]] = true
		}
		h := number(row["worked_hours"])
		a.hours += h
		a.count++
		total += h
	}

	ids := make([]int64, 0, len(byEmp))
	for id := range byEmp {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	employees := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		a := byEmp[id]
		employees = append(employees, map[string]any{
			"employee_id":   id,
			"employee_name": names[id],
			"days":          len(a.days),
			"records":       a.count,
			"worked_hours":  round(a.hours, 2),
		})
	}

	return rangeFields(map[string]any{
		"employees":     employees,
		"total_hours":   round(total, 2),
		"total_records": len(rows),
	}, r, ok), nil
}

func (uc *implUseCase) leaveSummary(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	rows, r, ok, err := uc.periodRows(ctx, spec, req)
	if err != nil {
		return nil, err
	}

	byState := map[string]map[string]any{}
	byType := map[string]float64{}
	totalDays := 0.0
	for _, row := range rows {
		state := toString(row["state"])
		s, found := byState[state]
		if !found {
			s = map[string]any{"count": 0, "days": 0.0}
			byState[state] = s
		}
		days := number(row["number_of_days"])
		s["count"] = s["count"].(int) + 1
		s["days"] = s["days"].(float64) + days
		if t := toString(row["leave_type"]); t != "" {
			byType[t] += days
		}
		totalDays += days
	}

	return rangeFields(map[string]any{
		"total":      len(rows),
		"total_days": totalDays,
		"by_state":   byState,
		"by_type":    byType,
	}, r, ok), nil
}

func (uc *implUseCase) payrollSummary(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	rows, r, ok, err := uc.periodRows(ctx, spec, req)
	if err != nil {
		return nil, err
	}

	var basic, net, insurance float64
	byState := map[string]int{}
	for _, row := range rows {
		if toString(row["state"]) == "cancel" {
			continue
		}
		basic += number(row["basic_wage"])
		net += number(row["net_wage"])
		insurance += number(row["insurance_employee"])
		byState[toString(row["state"])]++
	}

	return rangeFields(map[string]any{
		"payslips":        len(rows),
		"total_basic":     basic,
		"total_net":       net,
		"total_insurance": insurance,
		"by_state":        byState,
	}, r, ok), nil
}

func (uc *implUseCase) timesheetSummary(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	rows, r, ok, err := uc.periodRows(ctx, spec, req)
	if err != nil {
		return nil, err
	}
	projects, err := uc.names(ctx, "project")
	if err != nil {
		return nil, err
	}

	hours := map[int64]float64{}
	total := 0.0
	for _, row := range rows {
		id, _ := toInt64(row["project_id"])
		h := number(row["unit_amount"])
		hours[id] += h
		total += h
	}

	ids := make([]int64, 0, len(hours))
	for id := range hours {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	byProject := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		byProject = append(byProject, map[string]any{
			"project_id":   id,
			"project_name": projects[id],
			"hours":        round(hours[id], 2),
		})
	}

	return rangeFields(map[string]any{
		"lines":       len(rows),
		"total_hours": round(total, 2),
		"by_project":  byProject,
	}, r, ok), nil
}

func (uc *implUseCase) insuranceReport(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	policies, err := uc.records(ctx, spec)
	if err != nil {
		return nil, err
	}

	byType := map[string]map[string]any{}
	for _, p := range policies {
		t := strings.ToUpper(toString(p["policy_type"]))
		g, ok := byType[t]
		if !ok {
			g = map[string]any{"count": 0, "salary_base": 0.0}
			byType[t] = g
		}
		g["count"] = g["count"].(int) + 1
		g["salary_base"] = g["salary_base"].(float64) + number(p["salary_base"])
	}

	payments, err := uc.records(ctx, uc.entity("insurance.payment"))
	if err != nil {
		return nil, err
	}
	r, ok := uc.period(req.Extras)
	if ok {
		payments = inPeriod(payments, uc.entity("insurance.payment").dateField, r)
	}
	paid := 0.0
	for _, p := range payments {
		paid += number(p["amount"])
	}

	return rangeFields(map[string]any{
		"policies":   len(policies),
		"by_type":    byType,
		"payments":   len(payments),
		"total_paid": paid,
	}, r, ok), nil
}

func (uc *implUseCase) expiringContracts(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	days := int64(defaultExpiringDays)
	if n, ok := toInt64(req.Extras["days"]); ok && n > 0 {
		days = n
	}
	today := uc.today()
	window := datemath.Range{From: today, To: today.AddDate(0, 0, int(days)+1)}

	rows, err := uc.records(ctx, spec, dataservice.Cond("state", "=", "open"))
	if err != nil {
		return nil, err
	}
	rows = inPeriod(rows, "date_end", window)
	sort.SliceStable(rows, func(i, j int) bool {
		return toString(rows[i]["date_end"]) < toString(rows[j]["date_end"])
	})

	names, err := uc.names(ctx, "employee")
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		id, _ := toInt64(row["employee_id"])
		row["employee_name"] = names[id]
	}

	return map[string]any{
		"days":      days,
		"date_from": window.FromString(),
		"date_to":   window.LastDayString(),
		"contracts": rows,
		"count":     len(rows),
	}, nil
}

func (uc *implUseCase) subordinates(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	manager, err := uc.get(ctx, spec, req)
	if err != nil {
		return nil, err
	}
	rows, err := uc.records(ctx, spec, dataservice.Cond("parent_id", "=", manager.ID))
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"manager_id":   manager.ID,
		"manager_name": manager.Vals["name"],
		"subordinates": rows,
		"count":        len(rows),
	}, nil
}

func (uc *implUseCase) departmentEmployees(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	dep, err := uc.get(ctx, spec, req)
	if err != nil {
		return nil, err
	}
	rows, err := uc.records(ctx, uc.entity("employee"), dataservice.Cond("department_id", "=", dep.ID))
	if err != nil {
		return nil, err
	}
	if n, ok := toInt64(req.Extras["limit"]); ok && n > 0 && int(n) < len(rows) {
		rows = rows[:n]
	}
	return map[string]any{
		"department_id":   dep.ID,
		"department_name": dep.Vals["name"],
		"employees":       rows,
		"count":           len(rows),
	}, nil
}

func (uc *implUseCase) headcount(ctx context.Context, _ entitySpec, req dataservice.Request) (any, error) {
	employees, err := uc.records(ctx, uc.entity("employee"))
	if err != nil {
		return nil, err
	}
	departments, err := uc.names(ctx, "department")
	if err != nil {
		return nil, err
	}

	counts := map[int64]int{}
	for _, e := range employees {
		id, _ := toInt64(e["department_id"])
		counts[id]++
	}
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	byDepartment := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		name := departments[id]
		if id == 0 {
			name = "-"
		}
		byDepartment = append(byDepartment, map[string]any{
			"department_id":   id,
			"department_name": name,
			"count":           counts[id],
		})
	}

	return map[string]any{
		"total":         len(employees),
		"by_department": byDepartment,
	}, nil
}

func (uc *implUseCase) turnover(ctx context.Context, _ entitySpec, req dataservice.Request) (any, error) {
	all, err := uc.allRecords(ctx, "employee")
	if err != nil {
		return nil, err
	}

	active, archived := 0, 0
	var leavers []map[string]any
	r, ok := uc.period(req.Extras)
	for _, e := range all {
		if e["active"] == false {
			archived++
			if !ok || inRange(toString(e["departure_date"]), r) {
				leavers = append(leavers, e)
			}
			continue
		}
		active++
	}

	rate := 0.0
	if len(all) > 0 {
		rate = round(float64(len(leavers))/float64(len(all))*100, 1)
	}

	return rangeFields(map[string]any{
		"total":    len(all),
		"active":   active,
		"archived": archived,
		"leavers":  len(leavers),
		"rate":     rate,
	}, r, ok), nil
}

var exportAliases = map[string]string{
	"employees": "employee", "departments": "department", "jobs": "job", "contracts": "contract",
	"attendances": "attendance", "leaves": "leave", "payslips": "payslip", "timesheets": "timesheet",
	"expenses": "expense", "applicants": "applicant", "projects": "project", "tasks": "task",
	"skills": "skill", "shifts": "shift",
}

func (uc *implUseCase) export(ctx context.Context, _ entitySpec, req dataservice.Request) (any, error) {
	kind := strings.ToLower(strings.TrimSpace(toString(req.Extras["report_type"])))
	if alias, ok := exportAliases[kind]; ok {
		kind = alias
	}
	spec, ok := lookupEntity(kind)
	if !ok || spec.virtual {
		return nil, fmt.Errorf("%w: report_type %q", dataservice.ErrUnknownEntity, kind)
	}

	rows, r, hasPeriod, err := uc.periodRows(ctx, spec, dataservice.Request{Extras: req.Extras})
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(toString(req.Extras["format"]))
	out := rangeFields(map[string]any{
		"report_type": kind,
		"count":       len(rows),
	}, r, hasPeriod)
	if format != "csv" {
		out["format"] = "json"
		out["rows"] = rows
		return out, nil
	}

	content, err := toCSV(rows)
	if err != nil {
		return nil, err
	}
	out["format"] = "csv"
	out["content"] = content
	return out, nil
}

func toCSV(rows []map[string]any) (string, error) {
	cols := map[string]bool{}
	for _, r := range rows {
		for k := range r {
			if k != "id" {
				cols[k] = true
			}
		}
	}
	header := make([]string, 0, len(cols)+1)
	for k := range cols {
		header = append(header, k)
	}
	sort.Strings(header)
	header = append([]string{"id"}, header...)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, r := range rows {
		line := make([]string, len(header))
		for i, k := range header {
			line[i] = toString(r[k])
		}
		if err := w.Write(line); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}
