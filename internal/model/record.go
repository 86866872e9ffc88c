package model

// Record is one stored HR record of an entity ("employee", "leave", "insurance.policy", ...).
type Record struct {
	ID     int64          // Store-assigned identifier, unique per entity
	Entity string         // Entity tag
	Vals   map[string]any // Field values, JSON-compatible
}

// Map returns a copy of the values with "id" set.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.Vals)+1)
	for k, v := range r.Vals {
		out[k] = v
	}
	out["id"] = r.ID
	return out
}

// Environment names
const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)
