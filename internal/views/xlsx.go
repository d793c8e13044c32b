package views

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX выгружает строки раскладки в книгу с одним листом; заголовок жирным.
func WriteXLSX(w io.Writer, sheet string, layout Layout) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx: nombre de hoja: %w", err)
	}

	headers := make([]interface{}, len(layout.Columns))
	for i, col := range layout.Columns {
		headers[i] = col.Label
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("xlsx: encabezado: %w", err)
	}

	if len(layout.Columns) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("xlsx: estilo: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(layout.Columns), 1)
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return fmt.Errorf("xlsx: estilo: %w", err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(layout.Columns))
		if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
			return fmt.Errorf("xlsx: ancho de columnas: %w", err)
		}
	}

	for i, row := range layout.Rows {
		values := make([]interface{}, len(row.Cells))
		for j, cell := range row.Cells {
			values[j] = cell.Text
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}
