// Package parser locates and projects attendance tables inside raw workbook sheets.
package parser

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/attclean/attclean-go/pkg/attclean/models"
	"github.com/xuri/excelize/v2"
)

// OpenWorkbook opens a workbook held entirely in memory.
func OpenWorkbook(data []byte) (*excelize.File, error) {
	return excelize.OpenReader(bytes.NewReader(data))
}

// LoadGrid reads a single sheet as a raw grid. Blank rows are kept so that
// row indexes match sheet row numbers minus one.
func LoadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			numeric, err := isNumericCell(f, sheetName, colIdx, rowIdx)
			if err != nil {
				return nil, err
			}
			if numeric {
				cells[colIdx] = parseValue(cellValue)
			} else {
				cells[colIdx] = models.StringCell(cellValue)
			}
		}
		grid[rowIdx] = cells
	}
	return grid, nil
}

// isNumericCell reports whether the stored cell type is numeric. Text,
// boolean, error and string-formula cells are not.
func isNumericCell(f *excelize.File, sheetName string, colIdx, rowIdx int) (bool, error) {
	cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return false, err
	}
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return false, err
	}
	return typ == excelize.CellTypeUnset || typ == excelize.CellTypeNumber, nil
}

// parseValue classifies the formatted text of a numeric cell. Text that no
// longer reads as a number, such as a formatted date, stays text.
// Numeric cells keep their original text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Cell{}
	}
	if !looksNumeric(s) {
		return models.StringCell(s)
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Cell{Kind: models.CellNumber, Text: s, Num: float64(i)}
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return models.Cell{Kind: models.CellNumber, Text: s, Num: f}
	}
	return models.StringCell(s)
}

// looksNumeric rejects strings ParseFloat would accept but a sheet never
// stores as a number, such as "NaN", "Inf" or hex floats.
func looksNumeric(s string) bool {
	first := s[0]
	if first != '-' && first != '+' && first != '.' && (first < '0' || first > '9') {
		return false
	}
	return !strings.ContainsAny(s, "xXpPnNiI_ \t")
}
