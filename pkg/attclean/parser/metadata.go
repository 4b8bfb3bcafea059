package parser

import (
	"strings"

	"github.com/attclean/attclean-go/pkg/attclean/models"
)

// DefaultLookahead is the number of leading rows scanned for employee labels.
const DefaultLookahead = 10

const (
	labelEmpCode = "empcode"
	labelName    = "name"
)

// ExtractMetadata scans the first lookahead rows of grid for "EmpCode" and
// "Name" labels and takes the next non-empty value in the same row.
// Later labels overwrite earlier ones. lookahead <= 0 selects DefaultLookahead.
func ExtractMetadata(grid models.Grid, lookahead int) models.Metadata {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}

	var meta models.Metadata
	for rowIdx, row := range grid {
		if rowIdx >= lookahead {
			break
		}

		vals := make([]string, 0, len(row))
		for _, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			vals = append(vals, strings.TrimSpace(cell.String()))
		}

		for i := 0; i+1 < len(vals); i++ {
			switch strings.ToLower(vals[i]) {
			case labelEmpCode:
				code := vals[i+1]
				meta.Code = &code
			case labelName:
				name := vals[i+1]
				meta.Name = &name
			}
		}
	}
	return meta
}
