package attclean

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input bytes are not a readable xlsx container.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoData indicates that no sheet in the workbook holds a recognizable
// attendance header. Callers must treat it as an error state, never as an
// empty export.
var ErrNoData = errors.New("no valid sheets found")

// SheetError represents an error while reading a single sheet.
type SheetError struct {
	SheetName string
	Component string // "grid"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("attendance error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, component string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
