// Package export renders estimates as spreadsheets for adjusters and carriers.
package export

import (
	"fmt"
	"io"

	"claimscope/internal/domain/entities"
	"claimscope/internal/domain/rollup"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetLineItems = "Line Items"
	SheetCoverages = "Coverages"
	SheetSummary   = "Summary"

	moneyFormat = "#,##0.00"
)

var lineItemHeaders = []string{
	"Structure", "Area", "Zone", "Code", "Description", "Quantity", "Unit", "Unit Price",
	"Subtotal", "Tax", "RCV", "Depreciation", "ACV", "Recoverable", "Coverage",
}

var coverageHeaders = []string{
	"Coverage", "Type", "Line Items", "RCV", "Depreciation", "ACV", "Deductible", "Policy Limit", "Payable",
}

// WriteEstimateXLSX writes the estimate's line items, coverage buckets and totals as an xlsx
// workbook. alloc must come from the same rolled-up estimate.
func WriteEstimateXLSX(w io.Writer, est entities.Estimate, alloc rollup.CoverageAllocation) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := writeSummary(f, st, est); err != nil {
		return err
	}
	if err := writeLineItems(f, st, est); err != nil {
		return err
	}
	if err := writeCoverages(f, st, est, alloc); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if idx, err := f.GetSheetIndex(SheetSummary); err == nil {
		f.SetActiveSheet(idx)
	}
	_, err = f.WriteTo(w)
	return err
}

type styles struct {
	title  int
	header int
	money  int
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	if st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return st, err
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return st, err
	}
	format := moneyFormat
	st.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	return st, err
}

func money(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }

func writeHeader(f *excelize.File, st styles, sheet string, row int, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return f.SetCellStyle(sheet, first, last, st.header)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeSummary(f *excelize.File, st styles, est entities.Estimate) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetSummary, "A1", fmt.Sprintf("Claim %s", est.ClaimNumber)); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "A1", st.title); err != nil {
		return err
	}

	t := est.Totals
	rows := [][]any{
		{"Insured", est.InsuredName},
		{"Region", est.RegionID},
		{"Status", string(est.Status)},
		{"Line Items", t.LineItemCount},
		{"Subtotal", money(t.Subtotal)},
		{"Tax", money(t.Tax)},
		{"RCV", money(t.RCV)},
		{"Depreciation", money(t.Depreciation)},
		{"Recoverable Depreciation", money(t.RecoverableDepreciation)},
		{"Non-recoverable Depreciation", money(t.NonRecoverableDepreciation)},
		{"ACV", money(t.ACV)},
	}
	for i, r := range rows {
		if err := writeRow(f, SheetSummary, i+3, r); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetSummary, "B7", fmt.Sprintf("B%d", len(rows)+2), st.money); err != nil {
		return err
	}
	return f.SetColWidth(SheetSummary, "A", "A", 30)
}

func writeLineItems(f *excelize.File, st styles, est entities.Estimate) error {
	if _, err := f.NewSheet(SheetLineItems); err != nil {
		return err
	}
	if err := writeHeader(f, st, SheetLineItems, 1, lineItemHeaders); err != nil {
		return err
	}

	coverageNames := make(map[string]string, len(est.Coverages))
	for _, c := range est.Coverages {
		coverageNames[c.ID] = c.Name
	}

	row := 2
	for _, s := range est.Structures {
		for _, a := range s.Areas {
			for _, z := range a.Zones {
				for _, li := range z.LineItems {
					coverage := ""
					if li.CoverageID != nil {
						coverage = coverageNames[*li.CoverageID]
					}
					fin := li.Financials
					values := []any{
						s.Name, a.Name, z.Name, li.Code, li.Description,
						li.Quantity.InexactFloat64(), li.Unit, li.UnitPrice.InexactFloat64(),
						money(fin.Subtotal), money(fin.Tax), money(fin.RCV), money(fin.Depreciation), money(fin.ACV),
						li.Recoverable, coverage,
					}
					if err := writeRow(f, SheetLineItems, row, values); err != nil {
						return err
					}
					row++
				}
			}
		}
	}
	if row > 2 {
		if err := f.SetCellStyle(SheetLineItems, "H2", fmt.Sprintf("M%d", row-1), st.money); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetLineItems, "A", "E", 22); err != nil {
		return err
	}
	return f.AutoFilter(SheetLineItems, fmt.Sprintf("A1:O%d", max(row-1, 1)), nil)
}

func writeCoverages(f *excelize.File, st styles, est entities.Estimate, alloc rollup.CoverageAllocation) error {
	if _, err := f.NewSheet(SheetCoverages); err != nil {
		return err
	}
	if err := writeHeader(f, st, SheetCoverages, 1, coverageHeaders); err != nil {
		return err
	}

	row := 2
	for _, c := range est.Coverages {
		b, ok := alloc.Buckets[c.ID]
		if !ok {
			continue
		}
		values := []any{
			c.Name, string(c.Type), b.Totals.LineItemCount,
			money(b.Totals.RCV), money(b.Totals.Depreciation), money(b.Totals.ACV),
			money(c.Deductible), money(c.PolicyLimit), money(b.Payable),
		}
		if err := writeRow(f, SheetCoverages, row, values); err != nil {
			return err
		}
		row++
	}
	if u := alloc.Unassigned; u != nil && u.Totals.LineItemCount > 0 {
		values := []any{
			"Unassigned", "", u.Totals.LineItemCount,
			money(u.Totals.RCV), money(u.Totals.Depreciation), money(u.Totals.ACV),
			nil, nil, nil,
		}
		if err := writeRow(f, SheetCoverages, row, values); err != nil {
			return err
		}
		row++
	}
	if row > 2 {
		if err := f.SetCellStyle(SheetCoverages, "D2", fmt.Sprintf("I%d", row-1), st.money); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetCoverages, "A", "A", 24)
}
