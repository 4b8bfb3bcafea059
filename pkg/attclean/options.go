// Package attclean extracts attendance tables from biometric device workbooks.
package attclean

import "github.com/attclean/attclean-go/pkg/attclean/parser"

// Options configures extraction behavior.
type Options struct {
	// Lookahead is the number of leading rows scanned for EmpCode/Name labels.
	// Zero or negative selects parser.DefaultLookahead.
	Lookahead int
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Lookahead: parser.DefaultLookahead,
	}
}

// lookahead returns the effective lookahead.
func (o Options) lookahead() int {
	if o.Lookahead <= 0 {
		return parser.DefaultLookahead
	}
	return o.Lookahead
}
