package parser

import (
	"strings"

	"github.com/attclean/attclean-go/pkg/attclean/models"
)

var requiredFolded = func() map[string]struct{} {
	m := make(map[string]struct{}, len(models.RequiredColumns))
	for _, c := range models.RequiredColumns {
		m[strings.ToLower(c)] = struct{}{}
	}
	return m
}()

// FindHeaderRow returns the index of the first row holding at least one cell
// that, trimmed and case-folded, names a required column.
// A single matching cell is enough; the second result is false when no row qualifies.
func FindHeaderRow(grid models.Grid) (int, bool) {
	for rowIdx, row := range grid {
		for _, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			if _, ok := requiredFolded[normalize(cell.String())]; ok {
				return rowIdx, true
			}
		}
	}
	return -1, false
}

// normalize trims surrounding whitespace and case-folds s.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
