package types

import (
	"slices"
	"testing"
)

func TestEditPlan_Apply(t *testing.T) {
	tests := []struct {
		name     string
		comments []string
		plan     EditPlan
		want     []string
	}{
		{
			name:     "empty plan changes nothing",
			comments: []string{"A=1", "B=2"},
			plan:     EditPlan{},
			want:     []string{"A=1", "B=2"},
		},
		{
			name:     "delete happens before add",
			comments: []string{"A=1", "B=2"},
			plan:     EditPlan{Delete: []string{"A"}, Add: []string{"A=3"}},
			want:     []string{"B=2", "A=3"},
		},
		{
			name:     "delete of absent name is idempotent",
			comments: []string{"A=1"},
			plan:     EditPlan{Delete: []string{"Z"}},
			want:     []string{"A=1"},
		},
		{
			name:     "delete all",
			comments: []string{"A=1", "B=2"},
			plan:     EditPlan{DeleteAll: true},
			want:     nil,
		},
		{
			name:     "delete all then add",
			comments: []string{"A=1", "B=2"},
			plan:     EditPlan{DeleteAll: true, Add: []string{"C=3"}},
			want:     []string{"C=3"},
		},
		{
			name:     "set all replaces wholesale, adds append after",
			comments: []string{"A=1"},
			plan:     EditPlan{SetAll: true, Replace: []string{"C=9"}, Add: []string{"D=4"}},
			want:     []string{"C=9", "D=4"},
		},
		{
			name:     "set all with delete all still yields the replacement",
			comments: []string{"A=1", "B=2"},
			plan:     EditPlan{DeleteAll: true, SetAll: true, Replace: []string{"C=9"}},
			want:     []string{"C=9"},
		},
		{
			name:     "per-name deletes are skipped under delete all",
			comments: []string{"A=1", "B=2"},
			plan:     EditPlan{DeleteAll: true, Delete: []string{"A"}},
			want:     nil,
		},
		{
			name:     "adds keep their order and duplicates",
			comments: nil,
			plan:     EditPlan{Add: []string{"X=1", "X=1", "Y=2"}},
			want:     []string{"X=1", "X=1", "Y=2"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tags := &Tags{Vendor: "test vendor", Comments: slices.Clone(tc.comments)}
			tc.plan.Apply(tags)

			if !slices.Equal(tags.Comments, tc.want) {
				t.Errorf("Apply() = %v, want %v", tags.Comments, tc.want)
			}
			if tags.Vendor != "test vendor" {
				t.Errorf("Apply() changed the vendor string to %q", tags.Vendor)
			}
		})
	}
}

func TestEditPlan_Empty(t *testing.T) {
	tests := []struct {
		name string
		plan EditPlan
		want bool
	}{
		{"zero value", EditPlan{}, true},
		{"delete all", EditPlan{DeleteAll: true}, false},
		{"set all", EditPlan{SetAll: true}, false},
		{"delete names", EditPlan{Delete: []string{"A"}}, false},
		{"adds", EditPlan{Add: []string{"A=1"}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.plan.Empty(); got != tc.want {
				t.Errorf("Empty() = %v, want %v", got, tc.want)
			}
		})
	}
}
