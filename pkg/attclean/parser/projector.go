package parser

import (
	"github.com/attclean/attclean-go/pkg/attclean/models"
)

// totalRowMarker is the normalized first-column text of subtotal rows.
const totalRowMarker = "total for :"

// ProjectedColumns returns the required columns named by the header row at
// headerIdx, in required-column order, with the grid column each one binds to.
// Header names match exactly; a duplicated name binds to its first occurrence.
func ProjectedColumns(grid models.Grid, headerIdx int) (names []string, positions []int) {
	if headerIdx < 0 || headerIdx >= len(grid) {
		return nil, nil
	}

	first := make(map[string]int)
	for colIdx, cell := range grid[headerIdx] {
		if cell.IsEmpty() {
			continue
		}
		name := cell.String()
		if _, seen := first[name]; !seen {
			first[name] = colIdx
		}
	}

	for _, col := range models.RequiredColumns {
		if pos, ok := first[col]; ok {
			names = append(names, col)
			positions = append(positions, pos)
		}
	}
	return names, positions
}

// Project turns the rows below headerIdx into attendance rows carrying only
// the required columns, drops subtotal rows and attaches meta to every row.
// Blank rows are kept as rows with every value empty.
func Project(sheetName string, grid models.Grid, headerIdx int, meta models.Metadata) []models.Row {
	names, positions := ProjectedColumns(grid, headerIdx)
	if len(names) == 0 {
		return nil
	}

	var rows []models.Row
	for rowIdx := headerIdx + 1; rowIdx < len(grid); rowIdx++ {
		src := grid[rowIdx]
		values := make(map[string]models.Cell, len(names))
		for i, name := range names {
			values[name] = cellAt(src, positions[i])
		}

		if isTotalRow(values[names[0]]) {
			continue
		}

		rows = append(rows, models.Row{
			Sheet:     sheetName,
			SourceRow: rowIdx + 1,
			Values:    values,
			EmpCode:   copyString(meta.Code),
			EmpName:   copyString(meta.Name),
		})
	}
	return rows
}

// isTotalRow reports whether c, trimmed and case-folded, is the subtotal marker.
func isTotalRow(c models.Cell) bool {
	return normalize(c.String()) == totalRowMarker
}

func cellAt(row []models.Cell, col int) models.Cell {
	if col < len(row) {
		return row[col]
	}
	return models.Cell{}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
