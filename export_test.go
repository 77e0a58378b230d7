package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pnl/types"

	"github.com/xuri/excelize/v2"
)

func mugProduct() types.Product {
	return types.Product{
		Name:         "Mug",
		SellingPrice: 100,
		BaseCost:     20,
		ShippingFees: 5,
		DutyFees:     5,
		ReferralRate: 15,
		FBAFees:      10,
		AdsRate:      10,
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := ExportCSV(path, []types.Product{mugProduct()}); err != nil {
		t.Fatalf("export csv: %v", err)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported csv: %v", err)
	}
	text := string(body)
	if !strings.HasPrefix(text, strings.Join(exportHeader, ",")+"\n") {
		t.Fatalf("expected csv header, got %q", text)
	}
	want := "Mug,100.00,20.00,5.00,5.00,30.00,15.00,15.00,10.00,0.00,0.00,25.00,10.00,10.00,35.00,35.00,30.00"
	if !strings.Contains(text, want) {
		t.Fatalf("expected product row %q in csv, got %q", want, text)
	}
}

func TestExportCSVRoundsHalfAwayFromZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	p := types.Product{Name: "Odd", SellingPrice: 10.005, BaseCost: -0.125}

	if err := ExportCSV(path, []types.Product{p}); err != nil {
		t.Fatalf("export csv: %v", err)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported csv: %v", err)
	}
	if !strings.Contains(string(body), "Odd,10.01,-0.13,") {
		t.Fatalf("expected rounded values, got %q", string(body))
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := ExportJSON(path, []types.Product{mugProduct()}); err != nil {
		t.Fatalf("export json: %v", err)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported json: %v", err)
	}
	text := string(body)
	for _, want := range []string{`"name": "Mug"`, `"metrics": {`, `"profit": 35`, `"margin": 35`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s in json, got %q", want, text)
		}
	}
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	loss := types.Product{Name: "Leaky", SellingPrice: 10, BaseCost: 20}

	if err := ExportXLSX(path, []types.Product{mugProduct(), loss}); err != nil {
		t.Fatalf("export xlsx: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open exported xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(xlsxProductsSheet)
	if err != nil {
		t.Fatalf("read products sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "name" || rows[0][len(exportHeader)-1] != "base_cost_ratio" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Mug" || rows[2][0] != "Leaky" {
		t.Fatalf("unexpected product names: %q %q", rows[1][0], rows[2][0])
	}

	summary, err := f.GetRows(xlsxSummarySheet)
	if err != nil {
		t.Fatalf("read summary sheet: %v", err)
	}
	got := map[string]string{}
	for _, row := range summary {
		if len(row) == 2 {
			got[row[0]] = row[1]
		}
	}
	if got["products"] != "2" || got["best_product"] != "Mug" || got["losing_products"] != "1" {
		t.Fatalf("unexpected summary sheet: %v", got)
	}
}

func TestExportDispatchRejectsUnknownFormat(t *testing.T) {
	err := Export(ExportFormat("pdf"), filepath.Join(t.TempDir(), "out.pdf"), nil)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		input string
		want  ExportFormat
		ok    bool
	}{
		{input: "csv", want: FormatCSV, ok: true},
		{input: " JSON ", want: FormatJSON, ok: true},
		{input: "Xlsx", want: FormatXLSX, ok: true},
		{input: "pdf", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range tests {
		got, ok := ParseExportFormat(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseExportFormat(%q): expected (%q, %v), got (%q, %v)", tc.input, tc.want, tc.ok, got, ok)
		}
	}
}

func TestBuildExportPathSanitizesLabel(t *testing.T) {
	now := time.Date(2026, 2, 15, 12, 34, 56, 0, time.UTC)
	path := BuildExportPath("/tmp", " Suncatchers / Q1 ", "xlsx", now)
	if !strings.HasSuffix(path, "pnl-export-suncatchers-q1-20260215-123456.xlsx") {
		t.Fatalf("unexpected export path: %s", path)
	}
}

func TestBuildExportPathFallsBackToProducts(t *testing.T) {
	now := time.Date(2026, 2, 15, 12, 34, 56, 0, time.UTC)
	path := BuildExportPath("/tmp", " / ", "", now)
	if filepath.Base(path) != "pnl-export-products-20260215-123456.csv" {
		t.Fatalf("unexpected export path: %s", path)
	}
}

func overflowProduct() types.Product {
	return types.Product{Name: "Huge", SellingPrice: 10, BaseCost: 1e308, ShippingFees: 1e308, ReferralRate: 15}
}

func TestExportsZeroOverflowedMetrics(t *testing.T) {
	dir := t.TempDir()
	products := []types.Product{overflowProduct(), mugProduct()}

	for _, format := range []ExportFormat{FormatCSV, FormatJSON, FormatXLSX} {
		path := filepath.Join(dir, "out."+string(format))
		if err := Export(format, path, products); err != nil {
			t.Fatalf("export %s: %v", format, err)
		}
	}

	csvBody, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if text := string(csvBody); strings.Contains(text, "Inf") || strings.Contains(text, "NaN") {
		t.Fatalf("expected non-finite metrics to be zeroed in csv, got %q", text)
	}

	jsonBody, err := os.ReadFile(filepath.Join(dir, "out.json"))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if !strings.Contains(string(jsonBody), `"baseCostTotal": 0`) {
		t.Fatalf("expected zeroed landed cost in json, got %q", string(jsonBody))
	}

	f, err := excelize.OpenFile(filepath.Join(dir, "out.xlsx"))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(xlsxProductsSheet)
	if err != nil {
		t.Fatalf("read products sheet: %v", err)
	}
	if len(rows) != 3 || rows[1][0] != "Huge" {
		t.Fatalf("unexpected xlsx rows: %v", rows)
	}
}
