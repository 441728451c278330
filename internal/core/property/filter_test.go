package property

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids(properties []Property) []string {
	out := make([]string, len(properties))
	for i, p := range properties {
		out[i] = p.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	records := append(Samples(),
		Property{ID: "4", Name: "Brickell House", Type: TypeHouse, Location: "Miami, FL"},
		Property{ID: "5", Name: "Corner Shop", Type: TypeCommercial, Location: "Portland, OR"},
	)

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"defaults return everything in order", DefaultFilters(), []string{"1", "2", "3", "4", "5"}},
		{"zero value behaves like defaults", Filters{}, []string{"1", "2", "3", "4", "5"}},
		{"search matches location case-insensitively", Filters{Search: "MIAMI", Type: TypeAll}, []string{"3", "4"}},
		{"search matches name", Filters{Search: "waterfront", Type: TypeAll}, []string{"3"}},
		{"type only", Filters{Type: TypeFilter(TypeHouse)}, []string{"2", "4"}},
		{"search and type", Filters{Search: "miami", Type: TypeFilter(TypeHouse)}, []string{"4"}},
		{"no match", Filters{Search: "chicago", Type: TypeAll}, []string{}},
		{"description is not searched", Filters{Search: "backyard", Type: TypeAll}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(records, tt.filters))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_MiamiSamples(t *testing.T) {
	got := Filter(Samples(), Filters{Search: "miami", Type: TypeAll})
	if len(got) != 1 || got[0].Location != "Miami, FL" {
		t.Fatalf("got %+v, want only the Miami, FL record", got)
	}
}

func TestFilter_DoesNotAlias(t *testing.T) {
	records := Samples()
	got := Filter(records, DefaultFilters())
	got[0].Name = "changed"

	if records[0].Name == "changed" {
		t.Error("Filter result aliases its input")
	}
}

func TestParseTypeFilter(t *testing.T) {
	for _, s := range []string{"", "All", "House", "Commercial"} {
		if _, err := ParseTypeFilter(s); err != nil {
			t.Errorf("ParseTypeFilter(%q): %v", s, err)
		}
	}
	if _, err := ParseTypeFilter("Castle"); err == nil {
		t.Error("ParseTypeFilter(Castle) succeeded")
	}
}
