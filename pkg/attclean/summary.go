package attclean

import "github.com/attclean/attclean-go/pkg/attclean/models"

// SheetSummary describes what one sheet contributed to a table.
type SheetSummary struct {
	Name    string  `json:"name"`
	Rows    int     `json:"rows"`
	EmpCode *string `json:"empcode"`
	EmpName *string `json:"empname"`
}

// Summarize groups table rows by source sheet, in table order.
// Qualifying sheets that contributed no rows do not appear.
func Summarize(table *models.Table) []SheetSummary {
	if table == nil {
		return nil
	}

	var out []SheetSummary
	index := make(map[string]int)
	for _, row := range table.Rows {
		i, ok := index[row.Sheet]
		if !ok {
			i = len(out)
			index[row.Sheet] = i
			out = append(out, SheetSummary{
				Name:    row.Sheet,
				EmpCode: row.EmpCode,
				EmpName: row.EmpName,
			})
		}
		out[i].Rows++
	}
	return out
}
