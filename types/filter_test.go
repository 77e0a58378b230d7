package types

import "testing"

func TestApplyFilter(t *testing.T) {
	input := []Product{
		{Name: "win", SellingPrice: 20, BaseCost: 5},
		{Name: "even", SellingPrice: 10, BaseCost: 10},
		{Name: "lose", SellingPrice: 10, BaseCost: 15},
	}

	tests := []struct {
		name   string
		filter ProfitFilter
		want   []string
	}{
		{name: "all", filter: FilterAll, want: []string{"win", "even", "lose"}},
		{name: "profitable includes break-even", filter: FilterProfitable, want: []string{"win", "even"}},
		{name: "losing", filter: FilterLosing, want: []string{"lose"}},
		{name: "case insensitive", filter: ProfitFilter(" LOSING "), want: []string{"lose"}},
		{name: "unknown keeps all", filter: ProfitFilter("bogus"), want: []string{"win", "even", "lose"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyFilter(input, tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d products, got %d", len(tc.want), len(got))
			}
			for i, name := range tc.want {
				if got[i].Name != name {
					t.Fatalf("index %d: expected %q, got %q", i, name, got[i].Name)
				}
			}
		})
	}
}

func TestApplyFilterEmpty(t *testing.T) {
	if got := ApplyFilter(nil, FilterLosing); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
