package handler

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/models"
)

// buildIncomeWorkbook renders ledger entries into a single-sheet workbook.
func buildIncomeWorkbook(entries []models.IncomeEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []any{"Year", "Month", "Gross Pay", "Taxed Amount", "Net Pay"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, e := range entries {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{
			e.Year,
			e.MonthName,
			e.GrossPay.StringFixed(2),
			e.TaxedAmount.StringFixed(2),
			e.NetPay.StringFixed(2),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}
