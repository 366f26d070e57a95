package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"compoundlab/internal/growth"
)

// WriteXLSX writes the result as a workbook with a native-granularity
// "Schedule" sheet and an aggregated "Yearly" sheet.
func WriteXLSX(path string, result *growth.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Schedule"); err != nil {
		return err
	}
	if err := writeSheet(f, "Schedule", "Period", result.Schedule); err != nil {
		return err
	}

	if _, err := f.NewSheet("Yearly"); err != nil {
		return err
	}
	yearly := result.Yearly()
	if err := writeSheet(f, "Yearly", "Year", yearly); err != nil {
		return err
	}
	// Yearly rows are identified by year number, not raw period index.
	for i := range yearly {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetCellValue("Yearly", cell, i+1); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet, indexHeader string, schedule []growth.PeriodRecord) error {
	header := []interface{}{indexHeader, "Total Invested", "Total Amount", "Interest Earned"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, rec := range schedule {
		row := []interface{}{
			rec.Period,
			growth.RoundCents(rec.Invested),
			growth.RoundCents(rec.Balance),
			growth.RoundCents(rec.Interest),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
