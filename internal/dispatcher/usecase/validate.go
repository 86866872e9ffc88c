package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"hr-agent/internal/catalog"
	"hr-agent/internal/dispatcher"
)

// validate checks values against the route's body schema. Path ids count as
// present for required keys; empty strings do not.
func (uc *implUseCase) validate(route catalog.Route, values map[string]any, pathIDs map[string]int64) error {
	if route.Body == nil {
		return nil
	}

	schema, err := uc.schema(route)
	if err != nil {
		return err
	}

	doc := make(map[string]any, len(values)+len(pathIDs))
	for k, v := range pathIDs {
		doc[k] = v
	}
	for k, v := range values {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		doc[k] = v
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", dispatcher.ErrInvalidArgument, err)
	}
	if result.Valid() {
		return nil
	}

	var missing, invalid []string
	for _, e := range result.Errors() {
		switch e.Type() {
		case "required":
			missing = append(missing, fmt.Sprint(e.Details()["property"]))
		case "invalid_type":
			invalid = append(invalid, fmt.Sprintf("%s must be %v", e.Field(), e.Details()["expected"]))
		default:
			invalid = append(invalid, e.String())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", dispatcher.ErrMissingArgument, strings.Join(missing, ", "))
	}
	sort.Strings(invalid)
	return fmt.Errorf("%w: %s", dispatcher.ErrInvalidArgument, strings.Join(invalid, "; "))
}

// schema compiles the route's body hint once.
func (uc *implUseCase) schema(route catalog.Route) (*gojsonschema.Schema, error) {
	if s, ok := uc.schemas.Load(route.ID); ok {
		return s.(*gojsonschema.Schema), nil
	}

	props := make(map[string]any, len(route.Body.Types))
	for field, typ := range route.Body.Types {
		props[field] = map[string]any{"type": typ}
	}
	raw := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(route.Body.Required) > 0 {
		required := make([]any, 0, len(route.Body.Required))
		for _, r := range route.Body.Required {
			required = append(required, r)
		}
		raw["required"] = required
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: schema of %s: %v", dispatcher.ErrInvalidArgument, route.ID, err)
	}
	uc.schemas.Store(route.ID, s)
	return s, nil
}
