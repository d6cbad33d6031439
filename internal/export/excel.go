// Package export serializes report record sets into download formats:
// spreadsheet (xlsx), PDF tables and barcode asset labels.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Excel writes a header row plus one row per record into a single-sheet
// workbook and returns the serialized bytes.
func Excel(sheetTitle string, headers []string, rows [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetTitle); err != nil {
		return nil, fmt.Errorf("export: renaming sheet: %w", err)
	}

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheetTitle, "A1", &headerCells); err != nil {
		return nil, fmt.Errorf("export: writing header: %w", err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export: row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetTitle, start, &cells); err != nil {
			return nil, fmt.Errorf("export: writing row %d: %w", i+2, err)
		}
	}

	// Bold header, like the old report downloads had.
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		end, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheetTitle, "A1", end, style)
	}

	return f.WriteToBuffer()
}

// ExcelMIME is the content type for xlsx downloads.
const ExcelMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
