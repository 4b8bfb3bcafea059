package models

// Row is one attendance record.
type Row struct {
	// Sheet is the name of the sheet the row came from.
	Sheet string `json:"sheet"`
	// SourceRow is the 1-based row number within the sheet.
	SourceRow int `json:"source_row"`
	// Values holds the required columns the sheet provided.
	Values map[string]Cell `json:"values"`
	// EmpCode is the sheet's employee code (nil if absent).
	EmpCode *string `json:"empcode"`
	// EmpName is the sheet's employee name (nil if absent).
	EmpName *string `json:"empname"`
}

// Get returns the value of column. The second result is false when the
// column is absent from the row or holds an empty cell.
func (r Row) Get(column string) (Cell, bool) {
	switch column {
	case ColumnEmpCode:
		if r.EmpCode == nil {
			return Cell{}, false
		}
		return StringCell(*r.EmpCode), true
	case ColumnEmpName:
		if r.EmpName == nil {
			return Cell{}, false
		}
		return StringCell(*r.EmpName), true
	}
	c, ok := r.Values[column]
	if !ok || c.IsEmpty() {
		return Cell{}, false
	}
	return c, true
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	out := r
	out.Values = make(map[string]Cell, len(r.Values))
	for k, v := range r.Values {
		out.Values[k] = v
	}
	out.EmpCode = cloneString(r.EmpCode)
	out.EmpName = cloneString(r.EmpName)
	return out
}

// Table is the unified attendance table assembled from every qualifying sheet.
type Table struct {
	// Columns is the output header: provided required columns, then Empcode and EmpName.
	Columns []string `json:"columns"`
	// Rows holds records in sheet order, then source row order.
	Rows []Row `json:"rows"`
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
