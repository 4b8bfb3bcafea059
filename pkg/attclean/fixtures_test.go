package attclean

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheetFixture describes a fixture sheet as rows of plain values.
type sheetFixture struct {
	name string
	rows [][]interface{}
}

// buildWorkbook writes the given sheets, in order, to xlsx bytes.
func buildWorkbook(t *testing.T, sheets ...sheetFixture) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if s.name != "Sheet1" {
				require.NoError(t, f.SetSheetName("Sheet1", s.name))
			}
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for rowIdx, row := range s.rows {
			if len(row) == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func row(vals ...interface{}) []interface{} { return vals }
