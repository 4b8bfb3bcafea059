package attclean

import (
	"fmt"

	"github.com/attclean/attclean-go/pkg/attclean/models"
	"github.com/attclean/attclean-go/pkg/attclean/parser"
	"github.com/xuri/excelize/v2"
)

// Clean extracts the attendance rows of every sheet in an in-memory workbook
// and concatenates them into one table, in sheet order then row order.
//
// Sheets without a recognizable header row are skipped. When no sheet
// qualifies the error is ErrNoData. Bytes that cannot be opened as a
// workbook produce an error wrapping ErrInvalidFormat.
//
// Table.Columns lists the supplied required columns in RequiredColumns
// order followed by Empcode and EmpName, regardless of sheet order.
func Clean(data []byte, opts Options) (*models.Table, error) {
	f, err := parser.OpenWorkbook(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return cleanFile(f, opts)
}

func cleanFile(f *excelize.File, opts Options) (*models.Table, error) {
	qualifying := 0
	provided := make(map[string]bool)
	table := &models.Table{}

	for _, sheetName := range f.GetSheetList() {
		grid, err := parser.LoadGrid(f, sheetName)
		if err != nil {
			return nil, NewSheetError(sheetName, "grid", err)
		}

		meta := parser.ExtractMetadata(grid, opts.lookahead())
		hdr, ok := parser.FindHeaderRow(grid)
		if !ok {
			continue
		}
		qualifying++

		names, _ := parser.ProjectedColumns(grid, hdr)
		for _, name := range names {
			provided[name] = true
		}
		table.Rows = append(table.Rows, parser.Project(sheetName, grid, hdr, meta)...)
	}

	if qualifying == 0 {
		return nil, ErrNoData
	}

	for _, col := range models.RequiredColumns {
		if provided[col] {
			table.Columns = append(table.Columns, col)
		}
	}
	table.Columns = append(table.Columns, models.ColumnEmpCode, models.ColumnEmpName)
	return table, nil
}
