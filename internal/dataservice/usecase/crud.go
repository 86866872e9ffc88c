package usecase

import (
	"context"
	"fmt"
	"strings"

	"hr-agent/internal/dataservice"
)

func (uc *implUseCase) list(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	conds := append([]dataservice.Condition{}, req.Filters...)
	for k, v := range foreignIDs(spec, req) {
		conds = append(conds, dataservice.Cond(k, "=", v))
	}

	rows, err := uc.records(ctx, spec, conds...)
	if err != nil {
		return nil, err
	}

	if n, ok := toInt64(req.Extras["limit"]); ok && n > 0 && int(n) < len(rows) {
		rows = rows[:n]
	}
	return project(rows, req.Extras["fields"]), nil
}

func (uc *implUseCase) read(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	rec, err := uc.get(ctx, spec, req)
	if err != nil {
		return nil, err
	}
	return projectOne(rec.Map(), req.Extras["fields"]), nil
}

func (uc *implUseCase) create(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	vals := make(map[string]any, len(spec.defaults)+len(req.Values)+len(req.PathIDs))
	for k, v := range spec.defaults {
		vals[k] = v
	}
	for k, v := range req.Values {
		vals[k] = v
	}
	for k, v := range foreignIDs(spec, req) {
		vals[k] = v
	}
	uc.stampCreate(spec, vals)

	rec, err := uc.repo.Insert(ctx, spec.name, vals)
	if err != nil {
		return nil, err
	}
	return rec.Map(), nil
}

// stampCreate fills values derived at creation time.
func (uc *implUseCase) stampCreate(spec entitySpec, vals map[string]any) {
	now := uc.now().In(uc.dates.Location())
	switch spec.name {
	case "applicant":
		vals["create_date"] = now.Format(dateLayout)
	case "attendance":
		if _, ok := vals["check_in"]; !ok {
			vals["check_in"] = now.Format(dateTimeLayout)
		}
	case "leave":
		if _, ok := vals["number_of_days"]; !ok {
			if days := daysBetween(toString(vals["date_from"]), toString(vals["date_to"])); days > 0 {
				vals["number_of_days"] = days
			}
		}
	}
}

func (uc *implUseCase) update(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	id, err := ownID(spec, req)
	if err != nil {
		return nil, err
	}
	if len(req.Values) == 0 {
		return nil, fmt.Errorf("%w: values", dataservice.ErrMissingValue)
	}

	rec, err := uc.repo.Update(ctx, spec.name, id, req.Values)
	if err != nil {
		return nil, err
	}
	return rec.Map(), nil
}

// softDelete applies the state change carried in Values. Repeating it leaves
// the record in the same terminal state.
func (uc *implUseCase) softDelete(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	id, err := ownID(spec, req)
	if err != nil {
		return nil, err
	}
	if len(req.Values) == 0 {
		return nil, fmt.Errorf("%w: soft delete state", dataservice.ErrMissingValue)
	}

	rec, err := uc.repo.Update(ctx, spec.name, id, req.Values)
	if err != nil {
		return nil, err
	}
	return rec.Map(), nil
}

func (uc *implUseCase) unlink(ctx context.Context, spec entitySpec, req dataservice.Request) (any, error) {
	id, err := ownID(spec, req)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, spec.name, id); err != nil {
		return nil, err
	}
	return map[string]any{"id": id, "deleted": true}, nil
}

// project keeps only the requested fields (plus id) of each row.
func project(rows []map[string]any, fields any) []map[string]any {
	keep := fieldList(fields)
	if len(keep) == 0 {
		return rows
	}
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, pick(r, keep))
	}
	return out
}

func projectOne(row map[string]any, fields any) map[string]any {
	keep := fieldList(fields)
	if len(keep) == 0 {
		return row
	}
	return pick(row, keep)
}

func pick(row map[string]any, keep []string) map[string]any {
	out := map[string]any{"id": row["id"]}
	for _, f := range keep {
		if v, ok := row[f]; ok {
			out[f] = v
		}
	}
	return out
}

func fieldList(v any) []string {
	if s, ok := v.(string); ok {
		v = strings.Split(s, ",")
	}
	var out []string
	for _, f := range asList(v) {
		if s := strings.TrimSpace(toString(f)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
