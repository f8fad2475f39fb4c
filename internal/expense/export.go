package expense

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Masraflar"

var exportHeaders = []string{
	"ID", "Çalışan", "Masraf Türü", "Tutar", "Tarih", "Açıklama", "Durum", "Onaylayan", "Red Sebebi",
}

// WriteWorkbook renders expenses as a single-sheet xlsx workbook.
func WriteWorkbook(w io.Writer, expenses []*Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, e := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []interface{}{
			e.ID,
			e.EmployeeName,
			e.ExpenseType,
			e.Amount,
			e.Date,
			e.Description,
			e.Status,
			"",
			"",
		}
		if e.ApprovedBy != nil {
			row[7] = *e.ApprovedBy
		}
		if e.RejectionReason != nil {
			row[8] = *e.RejectionReason
		}

		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "B", "C", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(exportSheet, "F", "F", 40); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
