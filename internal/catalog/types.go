package catalog

import "strings"

// Verb is the action tag of a route: list, create, read, update, delete or action:<name>.
type Verb string

const (
	VerbList   Verb = "list"
	VerbCreate Verb = "create"
	VerbRead   Verb = "read"
	VerbUpdate Verb = "update"
	VerbDelete Verb = "delete"

	actionPrefix = "action:"
)

// Action builds an action verb, e.g. Action("approve") == "action:approve".
func Action(name string) Verb {
	return Verb(actionPrefix + name)
}

// IsAction reports whether v is an action:<name> verb.
func (v Verb) IsAction() bool {
	return strings.HasPrefix(string(v), actionPrefix)
}

// ActionName returns the <name> part of an action verb, or "" for plain verbs.
func (v Verb) ActionName() string {
	if !v.IsAction() {
		return ""
	}
	return strings.TrimPrefix(string(v), actionPrefix)
}

// Method is the HTTP method of a route.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// SoftDelete declares the state change a DELETE route performs instead of removing the record.
type SoftDelete struct {
	Field string
	Value any
}

// BodySchema is the schema hint for create/update bodies.
// Types holds JSON schema type names ("string", "integer", "number", "boolean").
type BodySchema struct {
	Required []string
	Types    map[string]string
}

// Route is one (method, path template) operation exposed by the service.
type Route struct {
	ID         string
	Path       string
	Method     Method
	Entity     string
	Verb       Verb
	PathParams []string
	Summary    string

	SoftDelete     *SoftDelete
	Fields         []string          // body keys forwarded to the Data Service
	Aliases        map[string]string // extractor key -> store field
	Extras         []string          // accepted extra keys
	RequiredExtras []string
	Body           *BodySchema
	Filters        bool // accepts domain predicates
}

// HasPathParams reports whether the route targets a specific record.
func (r Route) HasPathParams() bool {
	return len(r.PathParams) > 0
}

// GinPath converts "{name}" holes to gin's ":name" syntax.
func (r Route) GinPath() string {
	return holeRe.ReplaceAllString(r.Path, ":$1")
}

// Holes returns the hole names of the path template in order.
func (r Route) Holes() []string {
	matches := holeRe.FindAllStringSubmatch(r.Path, -1)
	holes := make([]string, 0, len(matches))
	for _, m := range matches {
		holes = append(holes, m[1])
	}
	return holes
}

// AcceptsField reports whether key is a whitelisted body key (before or after aliasing).
func (r Route) AcceptsField(key string) bool {
	if _, ok := r.Aliases[key]; ok {
		return true
	}
	return contains(r.Fields, key)
}

// AcceptsExtra reports whether key is a whitelisted extra.
func (r Route) AcceptsExtra(key string) bool {
	return contains(r.Extras, key)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
