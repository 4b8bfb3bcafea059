package models

// Grid is a raw sheet: ordered rows of untyped cells with no header assumption.
type Grid [][]Cell

// Metadata identifies the employee a sheet belongs to.
// A nil field means the label was not found.
type Metadata struct {
	// Code is the value next to the "EmpCode" label.
	Code *string `json:"code"`
	// Name is the value next to the "Name" label.
	Name *string `json:"name"`
}
