package types

import "testing"

func TestSortProducts(t *testing.T) {
	input := []Product{
		{Name: "Mug", SellingPrice: 20, BaseCost: 10},    // margin 50, profit 10
		{Name: "cap", SellingPrice: 10, BaseCost: 12},    // margin -20, profit -2
		{Name: "Bottle", SellingPrice: 40, BaseCost: 30}, // margin 25, profit 10
	}

	tests := []struct {
		name      string
		field     SortField
		dir       SortDirection
		wantOrder []string
	}{
		{
			name:      "input order",
			field:     SortFieldInput,
			dir:       SortDirectionDesc,
			wantOrder: []string{"Mug", "cap", "Bottle"},
		},
		{
			name:      "margin descending",
			field:     SortFieldMargin,
			dir:       SortDirectionDesc,
			wantOrder: []string{"Mug", "Bottle", "cap"},
		},
		{
			name:      "profit descending keeps ties stable",
			field:     SortFieldProfit,
			dir:       SortDirectionDesc,
			wantOrder: []string{"Mug", "Bottle", "cap"},
		},
		{
			name:      "price ascending",
			field:     SortFieldPrice,
			dir:       SortDirectionAsc,
			wantOrder: []string{"cap", "Mug", "Bottle"},
		},
		{
			name:      "name ascending ignores case",
			field:     SortFieldName,
			dir:       SortDirectionAsc,
			wantOrder: []string{"Bottle", "cap", "Mug"},
		},
		{
			name:      "invalid field keeps input order",
			field:     SortField("unknown"),
			dir:       SortDirectionAsc,
			wantOrder: []string{"Mug", "cap", "Bottle"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SortProducts(input, tc.field, tc.dir)
			if len(got) != len(tc.wantOrder) {
				t.Fatalf("expected %d products, got %d", len(tc.wantOrder), len(got))
			}
			for i := range tc.wantOrder {
				if got[i].Name != tc.wantOrder[i] {
					t.Fatalf("index %d: expected %q, got %q", i, tc.wantOrder[i], got[i].Name)
				}
			}
		})
	}
}

func TestSortProductsReturnsCopy(t *testing.T) {
	input := []Product{
		{Name: "B", SellingPrice: 20},
		{Name: "A", SellingPrice: 10},
	}

	got := SortProducts(input, SortFieldPrice, SortDirectionAsc)
	if &got[0] == &input[0] {
		t.Fatal("expected sort to return a copied slice")
	}
	if input[0].Name != "B" {
		t.Fatalf("expected original input to remain unchanged, got %q", input[0].Name)
	}
}
