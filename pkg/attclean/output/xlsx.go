// Package output serializes cleaned attendance tables.
package output

import (
	"fmt"
	"time"

	"github.com/attclean/attclean-go/pkg/attclean/models"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the media type of the exported workbook.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName is the name of the single exported sheet.
const SheetName = "Sheet1"

// DownloadName returns the file name offered for a cleaned workbook.
func DownloadName(day time.Time) string {
	return fmt.Sprintf("attendance_cleaned_%s.xlsx", day.Format("2006-01-02"))
}

// ToXLSX writes table as a single-sheet workbook: the header row holds
// table.Columns and each following row one record. Absent values are blank.
func ToXLSX(table *models.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range table.Rows {
		values := RowValues(table.Columns, row)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RowValues returns row's values in column order: string, float64 or nil.
func RowValues(columns []string, row models.Row) []interface{} {
	values := make([]interface{}, len(columns))
	for i, col := range columns {
		if c, ok := row.Get(col); ok {
			values[i] = c.Value()
		}
	}
	return values
}
