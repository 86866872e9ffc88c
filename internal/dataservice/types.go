package dataservice

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Op is the operation requested from the Data Service.
type Op string

const (
	OpList       Op = "list"
	OpRead       Op = "read"
	OpCreate     Op = "create"
	OpUpdate     Op = "update"
	OpSoftDelete Op = "soft_delete"

	actionOpPrefix = "action:"
)

// ActionOp builds an action:<name> op.
func ActionOp(name string) Op {
	return Op(actionOpPrefix + name)
}

// IsAction reports whether op is action:<name>.
func (o Op) IsAction() bool {
	return strings.HasPrefix(string(o), actionOpPrefix)
}

// ActionName returns <name> of an action op.
func (o Op) ActionName() string {
	return strings.TrimPrefix(string(o), actionOpPrefix)
}

// Mutates reports whether the op may change stored records.
func (o Op) Mutates() bool {
	switch o {
	case OpList, OpRead:
		return false
	case OpCreate, OpUpdate, OpSoftDelete:
		return true
	}
	return !readOnlyActions[o.ActionName()]
}

var readOnlyActions = map[string]bool{
	"stats": true, "search": true, "report": true, "summary": true, "expiring": true,
	"subordinates": true, "employees": true, "headcount": true, "turnover": true, "export": true,
}

// Condition is one domain predicate, encoded as [field, operator, value].
type Condition struct {
	Field    string
	Operator string
	Value    any
}

// Cond builds a Condition.
func Cond(field, operator string, value any) Condition {
	return Condition{Field: field, Operator: operator, Value: value}
}

func (c Condition) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Field, c.Operator, c.Value})
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCondition, data)
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: want [field, operator, value], got %d items", ErrInvalidCondition, len(raw))
	}
	if err := json.Unmarshal(raw[0], &c.Field); err != nil {
		return fmt.Errorf("%w: field: %v", ErrInvalidCondition, err)
	}
	if err := json.Unmarshal(raw[1], &c.Operator); err != nil {
		return fmt.Errorf("%w: operator: %v", ErrInvalidCondition, err)
	}
	if !validOperators[c.Operator] {
		return fmt.Errorf("%w: operator %q", ErrInvalidCondition, c.Operator)
	}
	return json.Unmarshal(raw[2], &c.Value)
}

var validOperators = map[string]bool{
	"=": true, "!=": true, ">": true, ">=": true, "<": true, "<=": true,
	"in": true, "not in": true, "like": true, "ilike": true, "=ilike": true,
}

// ValidOperator reports whether op is a supported predicate operator.
func ValidOperator(op string) bool {
	return validOperators[op]
}

// Request is the structured call sent to the Data Service.
type Request struct {
	Entity  string           `json:"entity"`
	Op      Op               `json:"op"`
	Filters []Condition      `json:"filters,omitempty"`
	Values  map[string]any   `json:"values,omitempty"`
	PathIDs map[string]int64 `json:"path_ids,omitempty"`
	Extras  map[string]any   `json:"extras,omitempty"`
}

// Result is the wire envelope of a Data Service reply.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DateFields maps each dated entity to the field period filters apply to.
var DateFields = map[string]string{
	"attendance":         "check_in",
	"leave":              "date_from",
	"leave.allocation":   "date_from",
	"payslip":            "date_from",
	"payslip.run":        "date_start",
	"timesheet":          "date",
	"expense":            "date",
	"contract":           "date_start",
	"insurance.policy":   "date_start",
	"insurance.payment":  "date",
	"insurance.benefit":  "date",
	"project":            "date_start",
	"project.assignment": "date_start",
	"shift.assignment":   "date",
	"task":               "date_deadline",
	"applicant":          "create_date",
}
