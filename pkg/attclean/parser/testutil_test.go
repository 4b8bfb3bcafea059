package parser

import "github.com/attclean/attclean-go/pkg/attclean/models"

// grid builds a raw grid from plain values: string, int, float64 or nil.
func grid(rows ...[]interface{}) models.Grid {
	g := make(models.Grid, len(rows))
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, v := range row {
			switch x := v.(type) {
			case nil:
				cells[j] = models.Cell{}
			case string:
				cells[j] = models.StringCell(x)
			case int:
				cells[j] = models.NumberCell(float64(x))
			case float64:
				cells[j] = models.NumberCell(x)
			}
		}
		g[i] = cells
	}
	return g
}

func r(vals ...interface{}) []interface{} { return vals }

func strPtr(s string) *string { return &s }

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
