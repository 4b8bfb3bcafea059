// Package models defines data structures for attendance extraction.
package models

import "strconv"

// CellKind tags the value held by a Cell.
type CellKind uint8

const (
	// CellEmpty marks a cell with no value.
	CellEmpty CellKind = iota
	// CellString marks a text cell (including whitespace-only text).
	CellString
	// CellNumber marks a numeric cell.
	CellNumber
)

// Cell is a single untyped spreadsheet value.
type Cell struct {
	// Kind is the value tag.
	Kind CellKind `json:"kind"`
	// Text is the cell text as read from the sheet.
	Text string `json:"text,omitempty"`
	// Num is the numeric value when Kind is CellNumber.
	Num float64 `json:"num,omitempty"`
}

// StringCell returns a text cell.
func StringCell(s string) Cell {
	return Cell{Kind: CellString, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Text: strconv.FormatFloat(n, 'f', -1, 64), Num: n}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the cell text. Empty cells render as "".
func (c Cell) String() string {
	if c.Kind == CellNumber && c.Text == "" {
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	}
	return c.Text
}

// Value returns the cell as a plain Go value: string, float64 or nil.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case CellString:
		return c.Text
	case CellNumber:
		return c.Num
	default:
		return nil
	}
}
