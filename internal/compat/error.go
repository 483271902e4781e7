package compat

import (
	"fmt"
	"path/filepath"
)

// NoCommand is the Command sentinel for findings that concern a whole file
// rather than a specific command.
const NoCommand = "n/a"

// Error is one recorded incompatibility finding.
//
// It is an immutable value: created once when the comparison detects an
// incompatibility, owned by the ErrorCollection from then on. The two
// directory identifiers are constant for a run but carried per record so a
// record renders without outside context.
type Error struct {
	Code    Code
	Command string
	Message string
	OldDir  string
	NewDir  string
	File    string
}

// String renders the finding in the stable single-line form:
//
//	Comparing <old> and <new>: Error in <file>: <code>: <message>
//
// where <old> and <new> are the final path segments of the compared
// directories. The format is a public contract; tests assert on it byte
// for byte.
func (e Error) String() string {
	return fmt.Sprintf("Comparing %s and %s: Error in %s: %s: %s",
		filepath.Base(e.OldDir), filepath.Base(e.NewDir), e.File, e.Code, e.Message)
}
