package output

import (
	"encoding/json"

	"github.com/attclean/attclean-go/pkg/attclean/models"
)

// Preview is the JSON view of the first rows of a table.
type Preview struct {
	Columns   []string                 `json:"columns"`
	TotalRows int                      `json:"total_rows"`
	Rows      []map[string]interface{} `json:"rows"`
}

// NewPreview builds a preview of at most limit rows. limit <= 0 keeps all rows.
func NewPreview(table *models.Table, limit int) Preview {
	n := table.Len()
	if limit > 0 && limit < n {
		n = limit
	}

	p := Preview{
		Columns:   table.Columns,
		TotalRows: table.Len(),
		Rows:      make([]map[string]interface{}, 0, n),
	}
	for _, row := range table.Rows[:n] {
		values := RowValues(table.Columns, row)
		obj := make(map[string]interface{}, len(values))
		for i, col := range table.Columns {
			obj[col] = values[i]
		}
		p.Rows = append(p.Rows, obj)
	}
	return p
}

// ToJSON serializes a preview of table.
func ToJSON(table *models.Table, limit int, pretty bool) ([]byte, error) {
	p := NewPreview(table, limit)
	if pretty {
		return json.MarshalIndent(p, "", "  ")
	}
	return json.Marshal(p)
}
