package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pnl/types"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportFormat names an export file type.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatXLSX ExportFormat = "xlsx"
)

// ParseExportFormat accepts csv, json or xlsx in any case.
func ParseExportFormat(raw string) (ExportFormat, bool) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, true
	default:
		return "", false
	}
}

var exportHeader = []string{
	"name",
	"selling_price",
	"base_cost",
	"shipping_fees",
	"duty_fees",
	"base_cost_total",
	"referral_rate",
	"referral_fees",
	"fba_fees",
	"storage_fees",
	"other_fees",
	"marketplace_fees",
	"ads_rate",
	"ads_spend",
	"profit",
	"margin",
	"base_cost_ratio",
}

// exportValues returns every numeric column after the name, in header order.
func exportValues(p types.Product) []float64 {
	m := p.Metrics()
	return []float64{
		p.SellingPrice,
		p.BaseCost,
		p.ShippingFees,
		p.DutyFees,
		m.BaseCostTotal,
		p.ReferralRate,
		m.ReferralFees,
		p.FBAFees,
		p.StorageFees,
		p.OtherFees,
		m.MarketplaceFees,
		p.AdsRate,
		m.AdsSpend,
		m.Profit,
		m.Margin,
		m.BaseCostRatio,
	}
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

func ExportCSV(path string, products []types.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range products {
		row := []string{p.Name}
		for _, v := range exportValues(p) {
			row = append(row, round2(v).StringFixed(2))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv export: %w", err)
	}
	return nil
}

type exportedProduct struct {
	types.Product
	Metrics types.Metrics `json:"metrics"`
}

// finiteMetrics zeroes overflowed figures, as the CSV and XLSX columns do,
// since JSON has no encoding for NaN or infinity.
func finiteMetrics(m types.Metrics) types.Metrics {
	for _, v := range []*float64{
		&m.BaseCostTotal, &m.ReferralFees, &m.MarketplaceFees, &m.AdsSpend,
		&m.Profit, &m.Margin, &m.BaseCostRatio,
	} {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			*v = 0
		}
	}
	return m
}

func ExportJSON(path string, products []types.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json export: %w", err)
	}
	defer f.Close()

	out := make([]exportedProduct, len(products))
	for i, p := range products {
		out[i] = exportedProduct{Product: p, Metrics: finiteMetrics(p.Metrics())}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	return nil
}

const (
	xlsxProductsSheet = "Products"
	xlsxSummarySheet  = "Summary"
)

// ExportXLSX writes a Products sheet with one row per product and a
// Summary sheet with the portfolio aggregates.
func ExportXLSX(path string, products []types.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxProductsSheet); err != nil {
		return fmt.Errorf("rename xlsx sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E7FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create xlsx header style: %w", err)
	}

	for i, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(xlsxProductsSheet, cell, h); err != nil {
			return fmt.Errorf("write xlsx header: %w", err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeader))
	if err := f.SetCellStyle(xlsxProductsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style xlsx header: %w", err)
	}

	for r, p := range products {
		row := r + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(xlsxProductsSheet, cell, p.Name); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", row, err)
		}
		for c, v := range exportValues(p) {
			cell, _ := excelize.CoordinatesToCellName(c+2, row)
			if err := f.SetCellFloat(xlsxProductsSheet, cell, round2(v).InexactFloat64(), 2, 64); err != nil {
				return fmt.Errorf("write xlsx row %d: %w", row, err)
			}
		}
	}
	if err := f.SetColWidth(xlsxProductsSheet, "A", "A", 28); err != nil {
		return fmt.Errorf("size xlsx columns: %w", err)
	}

	if err := writeXLSXSummary(f, types.Summarize(products)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx export: %w", err)
	}
	return nil
}

func writeXLSXSummary(f *excelize.File, s types.Summary) error {
	if _, err := f.NewSheet(xlsxSummarySheet); err != nil {
		return fmt.Errorf("create xlsx summary sheet: %w", err)
	}

	best := "N/A"
	if s.HasBest {
		best = s.Best.DisplayName()
	}
	rows := [][]any{
		{"products", s.Count},
		{"total_profit", round2(s.TotalProfit).InexactFloat64()},
		{"average_margin", round2(s.AverageMargin).InexactFloat64()},
		{"best_product", best},
		{"best_margin", round2(s.BestMargin).InexactFloat64()},
		{"losing_products", s.LossCount},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(xlsxSummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write xlsx summary: %w", err)
		}
	}
	return nil
}

// Export writes products to path in the given format.
func Export(format ExportFormat, path string, products []types.Product) error {
	switch format {
	case FormatCSV:
		return ExportCSV(path, products)
	case FormatJSON:
		return ExportJSON(path, products)
	case FormatXLSX:
		return ExportXLSX(path, products)
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
}

func BuildExportPath(dir, label, ext string, now time.Time) string {
	name := slug.Make(label)
	if len(name) > 40 {
		name = strings.Trim(name[:40], "-")
	}
	if name == "" {
		name = "products"
	}
	if ext == "" {
		ext = string(FormatCSV)
	}
	file := fmt.Sprintf("pnl-export-%s-%s.%s", name, now.Format("20060102-150405"), ext)
	return filepath.Join(dir, file)
}
