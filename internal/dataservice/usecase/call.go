package usecase

import (
	"context"
	"fmt"

	"hr-agent/internal/dataservice"
	"hr-agent/internal/dataservice/repository"
	"hr-agent/internal/model"
)

// Call executes one Data Service request against the repository.
func (uc *implUseCase) Call(ctx context.Context, req dataservice.Request) (any, error) {
	spec, ok := lookupEntity(req.Entity)
	if !ok {
		return nil, fmt.Errorf("%w: %s", dataservice.ErrUnknownEntity, req.Entity)
	}

	var (
		data any
		err  error
	)
	switch {
	case spec.virtual && !req.Op.IsAction():
		err = fmt.Errorf("%w: %s on %s", dataservice.ErrUnsupportedOp, req.Op, req.Entity)
	case req.Op == dataservice.OpList:
		data, err = uc.list(ctx, spec, req)
	case req.Op == dataservice.OpRead:
		data, err = uc.read(ctx, spec, req)
	case req.Op == dataservice.OpCreate:
		data, err = uc.create(ctx, spec, req)
	case req.Op == dataservice.OpUpdate:
		data, err = uc.update(ctx, spec, req)
	case req.Op == dataservice.OpSoftDelete:
		data, err = uc.softDelete(ctx, spec, req)
	case req.Op.IsAction():
		data, err = uc.action(ctx, spec, req)
	default:
		err = fmt.Errorf("%w: %s", dataservice.ErrUnsupportedOp, req.Op)
	}

	if err != nil {
		uc.l.Warnf(ctx, "internal.dataservice.usecase.Call: %s %s: %v", req.Entity, req.Op, err)
		return nil, err
	}
	return data, nil
}

// ownID returns the record's own id from the path ids.
func ownID(spec entitySpec, req dataservice.Request) (int64, error) {
	id, ok := req.PathIDs[spec.idKey]
	if !ok {
		return 0, fmt.Errorf("%w: %s", dataservice.ErrMissingValue, spec.idKey)
	}
	return id, nil
}

// foreignIDs returns path ids that reference other records.
func foreignIDs(spec entitySpec, req dataservice.Request) map[string]int64 {
	out := make(map[string]int64, len(req.PathIDs))
	for k, v := range req.PathIDs {
		if k != spec.idKey {
			out[k] = v
		}
	}
	return out
}

func (uc *implUseCase) get(ctx context.Context, spec entitySpec, req dataservice.Request) (model.Record, error) {
	id, err := ownID(spec, req)
	if err != nil {
		return model.Record{}, err
	}
	return uc.repo.Get(ctx, spec.name, id)
}

// records lists an entity filtered by conds. Archived rows are hidden unless a
// condition mentions "active".
func (uc *implUseCase) records(ctx context.Context, spec entitySpec, conds ...dataservice.Condition) ([]map[string]any, error) {
	equals := map[string]any{}
	showArchived := !spec.archivable
	for _, c := range conds {
		if c.Field == "active" {
			showArchived = true
		}
		if c.Operator == "=" && c.Field != "active" {
			if _, ok := toFloat(c.Value); ok {
				equals[c.Field] = c.Value
			}
		}
	}

	recs, err := uc.repo.List(ctx, repository.ListOptions{Entity: spec.name, Equals: equals})
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(recs))
	for _, r := range recs {
		row := r.Map()
		if !showArchived && row["active"] == false {
			continue
		}
		if matchAll(row, conds) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
