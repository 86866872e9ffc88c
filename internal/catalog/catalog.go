package catalog

import (
	"fmt"
	"regexp"
)

var holeRe = regexp.MustCompile(`\{([a-z_]+)\}`)

type entityVerb struct {
	entity string
	verb   Verb
}

type methodPath struct {
	method Method
	path   string
}

// Catalog is the read-only registry of routes. Safe for concurrent use after New.
type Catalog struct {
	routes       []Route
	byID         map[string]int
	byEntityVerb map[entityVerb]int
	byMethodPath map[methodPath]int
}

// New validates routes and indexes them.
func New(routes []Route) (*Catalog, error) {
	c := &Catalog{
		routes:       make([]Route, 0, len(routes)),
		byID:         make(map[string]int, len(routes)),
		byEntityVerb: make(map[entityVerb]int, len(routes)),
		byMethodPath: make(map[methodPath]int, len(routes)),
	}

	for _, r := range routes {
		if err := validate(r); err != nil {
			return nil, err
		}
		if _, ok := c.byID[r.ID]; ok {
			return nil, fmt.Errorf("%w: id %s", ErrDuplicateRoute, r.ID)
		}
		mp := methodPath{r.Method, r.Path}
		if prev, ok := c.byMethodPath[mp]; ok {
			return nil, fmt.Errorf("%w: %s %s declared by %s and %s", ErrDuplicateRoute, r.Method, r.Path, c.routes[prev].ID, r.ID)
		}
		ev := entityVerb{r.Entity, r.Verb}
		if prev, ok := c.byEntityVerb[ev]; ok {
			return nil, fmt.Errorf("%w: %s/%s declared by %s and %s", ErrDuplicateRoute, r.Entity, r.Verb, c.routes[prev].ID, r.ID)
		}

		idx := len(c.routes)
		c.routes = append(c.routes, r)
		c.byID[r.ID] = idx
		c.byMethodPath[mp] = idx
		c.byEntityVerb[ev] = idx
	}

	return c, nil
}

// Default returns the catalog built from the shipped route table.
func Default() *Catalog {
	c, err := New(Routes())
	if err != nil {
		panic(fmt.Sprintf("catalog: inconsistent route table: %v", err))
	}
	return c
}

func validate(r Route) error {
	if r.ID == "" || r.Path == "" || r.Entity == "" || r.Verb == "" {
		return fmt.Errorf("%w: %+v", ErrInvalidRoute, r)
	}
	switch r.Method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
	default:
		return fmt.Errorf("%w: %s has method %q", ErrInvalidRoute, r.ID, r.Method)
	}
	for _, h := range r.Holes() {
		if !contains(r.PathParams, h) {
			return fmt.Errorf("%w: %s hole {%s} not in path params", ErrInvalidRoute, r.ID, h)
		}
	}
	if r.SoftDelete != nil && r.Method != MethodDelete {
		return fmt.Errorf("%w: %s soft delete on %s", ErrInvalidRoute, r.ID, r.Method)
	}
	return nil
}

// Resolve returns the route with the given id.
func (c *Catalog) Resolve(id string) (Route, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, id)
	}
	return c.routes[idx], nil
}

// All returns the routes in declaration order.
func (c *Catalog) All() []Route {
	out := make([]Route, len(c.routes))
	copy(out, c.routes)
	return out
}

// ByEntityVerb returns the route for an (entity, verb) pair.
func (c *Catalog) ByEntityVerb(entity string, verb Verb) (Route, bool) {
	idx, ok := c.byEntityVerb[entityVerb{entity, verb}]
	if !ok {
		return Route{}, false
	}
	return c.routes[idx], true
}

// Lookup returns the route declared for method and path template.
func (c *Catalog) Lookup(method Method, path string) (Route, bool) {
	idx, ok := c.byMethodPath[methodPath{method, path}]
	if !ok {
		return Route{}, false
	}
	return c.routes[idx], true
}
