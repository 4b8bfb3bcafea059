package parser

import "testing"

func TestExtractMetadata(t *testing.T) {
	tests := []struct {
		name      string
		grid      [][]interface{}
		lookahead int
		code      *string
		empName   *string
	}{
		{
			name: "code and name on one row",
			grid: [][]interface{}{
				r("EmpCode", nil, " E100 ", nil, "Name", "Ravi Kumar"),
			},
			code:    strPtr("E100"),
			empName: strPtr("Ravi Kumar"),
		},
		{
			name: "labels are case folded, values keep case",
			grid: [][]interface{}{
				r(" EMPCODE ", "ab12"),
				r("name", "mIxEd"),
			},
			code:    strPtr("ab12"),
			empName: strPtr("mIxEd"),
		},
		{
			name: "numeric code",
			grid: [][]interface{}{
				r("EmpCode", 1001),
			},
			code: strPtr("1001"),
		},
		{
			name: "last label wins",
			grid: [][]interface{}{
				r("title"),
				r("title"),
				r("EmpCode", "A1"),
				r(),
				r(),
				r("EmpCode", "A2"),
			},
			code: strPtr("A2"),
		},
		{
			name: "label without value is ignored",
			grid: [][]interface{}{
				r("EmpCode", "A1"),
				r("EmpCode"),
				r("Name", nil, nil),
			},
			code: strPtr("A1"),
		},
		{
			name: "rows beyond lookahead are not scanned",
			grid: [][]interface{}{
				r("x"), r("x"), r("x"),
				r("EmpCode", "LATE"),
			},
			lookahead: 3,
		},
		{
			name: "label used as value",
			grid: [][]interface{}{
				r("Name", "EmpCode", "Z9"),
			},
			code:    strPtr("Z9"),
			empName: strPtr("EmpCode"),
		},
		{
			name: "whitespace-only value counts",
			grid: [][]interface{}{
				r("Name", "   ", "EmpCode", "E7"),
			},
			code:    strPtr("E7"),
			empName: strPtr(""),
		},
		{
			name: "nothing found stays absent",
			grid: [][]interface{}{r("Employee", "Ravi")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := ExtractMetadata(grid(tt.grid...), tt.lookahead)
			if !ptrEqual(meta.Code, tt.code) {
				t.Errorf("Code = %v, expected %v", deref(meta.Code), deref(tt.code))
			}
			if !ptrEqual(meta.Name, tt.empName) {
				t.Errorf("Name = %v, expected %v", deref(meta.Name), deref(tt.empName))
			}
		})
	}
}

func TestExtractMetadataDefaultLookahead(t *testing.T) {
	rows := make([][]interface{}, 0, 12)
	for i := 0; i < 9; i++ {
		rows = append(rows, r("filler"))
	}
	rows = append(rows, r("EmpCode", "IN"))  // row 10, inside the window
	rows = append(rows, r("EmpCode", "OUT")) // row 11, outside

	meta := ExtractMetadata(grid(rows...), 0)
	if meta.Code == nil || *meta.Code != "IN" {
		t.Errorf("Expected code IN, got %v", deref(meta.Code))
	}
}

func deref(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
