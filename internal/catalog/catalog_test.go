package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"hr-agent/internal/catalog"
)

func TestDefault_Invariants(t *testing.T) {
	c := catalog.Default()
	routes := c.All()

	if len(routes) < 110 {
		t.Fatalf("len(All()) = %d, want the full route table", len(routes))
	}

	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		if !strings.HasPrefix(r.Path, "/api/hr/") {
			t.Errorf("%s: path %s outside /api/hr", r.ID, r.Path)
		}

		key := string(r.Method) + " " + r.Path
		if seen[key] {
			t.Errorf("%s: duplicate %s", r.ID, key)
		}
		seen[key] = true

		for _, h := range r.Holes() {
			found := false
			for _, p := range r.PathParams {
				if p == h {
					found = true
				}
			}
			if !found {
				t.Errorf("%s: hole %s not declared", r.ID, h)
			}
		}

		if r.SoftDelete != nil && r.Method != catalog.MethodDelete {
			t.Errorf("%s: soft delete on %s", r.ID, r.Method)
		}

		got, err := c.Resolve(r.ID)
		if err != nil || got.Path != r.Path {
			t.Errorf("Resolve(%s) = %v, %v", r.ID, got.Path, err)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := catalog.Default().Resolve("employees.fly")
	if !errors.Is(err, catalog.ErrUnknownRoute) {
		t.Fatalf("error = %v, want ErrUnknownRoute", err)
	}
}

func TestRoute_Metadata(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		id     string
		method catalog.Method
		path   string
		gin    string
		params []string
		soft   *catalog.SoftDelete
	}{
		{"employees.list", catalog.MethodGet, "/api/hr/employees", "/api/hr/employees", nil, nil},
		{"employees.delete", catalog.MethodDelete, "/api/hr/employees/{employee_id}", "/api/hr/employees/:employee_id",
			[]string{"employee_id"}, &catalog.SoftDelete{Field: "active", Value: false}},
		{"leaves.delete", catalog.MethodDelete, "/api/hr/leaves/{leave_id}", "/api/hr/leaves/:leave_id",
			[]string{"leave_id"}, &catalog.SoftDelete{Field: "state", Value: "cancel"}},
		{"attendances.delete", catalog.MethodDelete, "/api/hr/attendances/{attendance_id}", "/api/hr/attendances/:attendance_id",
			[]string{"attendance_id"}, nil},
		{"attendances.checkin", catalog.MethodPost, "/api/hr/attendances/checkin/{employee_id}", "/api/hr/attendances/checkin/:employee_id",
			[]string{"employee_id"}, nil},
		{"leaves.approve", catalog.MethodPost, "/api/hr/leaves/{leave_id}/approve", "/api/hr/leaves/:leave_id/approve",
			[]string{"leave_id"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			r, err := c.Resolve(tc.id)
			if err != nil {
				t.Fatal(err)
			}
			if r.Method != tc.method || r.Path != tc.path {
				t.Errorf("got %s %s, want %s %s", r.Method, r.Path, tc.method, tc.path)
			}
			if r.GinPath() != tc.gin {
				t.Errorf("GinPath() = %s, want %s", r.GinPath(), tc.gin)
			}
			if strings.Join(r.PathParams, ",") != strings.Join(tc.params, ",") {
				t.Errorf("PathParams = %v, want %v", r.PathParams, tc.params)
			}
			switch {
			case tc.soft == nil && r.SoftDelete != nil:
				t.Errorf("SoftDelete = %+v, want nil", r.SoftDelete)
			case tc.soft != nil && (r.SoftDelete == nil || *r.SoftDelete != *tc.soft):
				t.Errorf("SoftDelete = %+v, want %+v", r.SoftDelete, tc.soft)
			}
		})
	}
}

func TestRoute_Aliases(t *testing.T) {
	r, err := catalog.Default().Resolve("jobs.create")
	if err != nil {
		t.Fatal(err)
	}
	if r.Aliases["expected_employees"] != "no_of_recruitment" {
		t.Errorf("alias = %q", r.Aliases["expected_employees"])
	}
	if !r.AcceptsField("expected_employees") || !r.AcceptsField("name") || r.AcceptsField("salary") {
		t.Error("AcceptsField does not follow the whitelist")
	}
}

func TestByEntityVerb(t *testing.T) {
	c := catalog.Default()

	r, ok := c.ByEntityVerb("leave", catalog.Action("approve"))
	if !ok || r.ID != "leaves.approve" {
		t.Errorf("ByEntityVerb(leave, approve) = %s, %v", r.ID, ok)
	}
	if _, ok := c.ByEntityVerb("skill", catalog.VerbUpdate); ok {
		t.Error("skill update should not exist")
	}
	if r, ok := c.Lookup(catalog.MethodGet, "/api/hr/projects/assignments"); !ok || r.ID != "project_assignments.list" {
		t.Errorf("Lookup = %s, %v", r.ID, ok)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		routes []catalog.Route
		want   error
	}{
		{
			name: "duplicate method and path",
			routes: []catalog.Route{
				{ID: "a", Path: "/x", Method: catalog.MethodGet, Entity: "e", Verb: catalog.VerbList},
				{ID: "b", Path: "/x", Method: catalog.MethodGet, Entity: "f", Verb: catalog.VerbList},
			},
			want: catalog.ErrDuplicateRoute,
		},
		{
			name: "undeclared hole",
			routes: []catalog.Route{
				{ID: "a", Path: "/x/{x_id}", Method: catalog.MethodGet, Entity: "e", Verb: catalog.VerbRead},
			},
			want: catalog.ErrInvalidRoute,
		},
		{
			name: "soft delete on GET",
			routes: []catalog.Route{
				{ID: "a", Path: "/x", Method: catalog.MethodGet, Entity: "e", Verb: catalog.VerbList,
					SoftDelete: &catalog.SoftDelete{Field: "active", Value: false}},
			},
			want: catalog.ErrInvalidRoute,
		},
		{
			name: "bad method",
			routes: []catalog.Route{
				{ID: "a", Path: "/x", Method: "PATCH", Entity: "e", Verb: catalog.VerbUpdate},
			},
			want: catalog.ErrInvalidRoute,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := catalog.New(tc.routes); !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}
