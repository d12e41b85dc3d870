package exporter

import (
	"path/filepath"
	"strings"

	ferrors "fincalc/internal/errors"
	"fincalc/internal/loan"
)

var amortizationHeaders = []string{"Month", "Principal Payment", "Interest Payment", "Remaining Balance"}

var depreciationHeaders = []string{"Year", "Depreciation Expense", "Book Value"}

// ExportAmortizationSchedule writes a full amortization schedule to
// filePath. The format is chosen by extension: .csv or .xlsx.
func ExportAmortizationSchedule(filePath string, schedule []loan.AmortizationPayment) error {
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".csv":
		records := make([][]string, len(schedule))
		for i, p := range schedule {
			records[i] = []string{
				formatInt(p.Month),
				formatFloat(p.PrincipalPayment),
				formatFloat(p.InterestPayment),
				formatFloat(p.RemainingBalance),
			}
		}
		return WriteSimpleCSV(filePath, amortizationHeaders, records)
	case ".xlsx":
		records := make([][]interface{}, len(schedule))
		for i, p := range schedule {
			records[i] = []interface{}{p.Month, p.PrincipalPayment, p.InterestPayment, p.RemainingBalance}
		}
		return WriteXLSX(filePath, "Amortization", amortizationHeaders, records)
	default:
		return ferrors.InvalidInputf("file", filePath, "unsupported export format %q, use .csv or .xlsx", filepath.Ext(filePath))
	}
}

// ExportDepreciationSchedule writes a depreciation schedule to
// filePath, choosing the format by extension like
// ExportAmortizationSchedule.
func ExportDepreciationSchedule(filePath string, schedule []loan.DepreciationYear) error {
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".csv":
		records := make([][]string, len(schedule))
		for i, y := range schedule {
			records[i] = []string{
				formatInt(y.Year),
				formatFloat(y.Expense),
				formatFloat(y.BookValue),
			}
		}
		return WriteSimpleCSV(filePath, depreciationHeaders, records)
	case ".xlsx":
		records := make([][]interface{}, len(schedule))
		for i, y := range schedule {
			records[i] = []interface{}{y.Year, y.Expense, y.BookValue}
		}
		return WriteXLSX(filePath, "Depreciation", depreciationHeaders, records)
	default:
		return ferrors.InvalidInputf("file", filePath, "unsupported export format %q, use .csv or .xlsx", filepath.Ext(filePath))
	}
}
