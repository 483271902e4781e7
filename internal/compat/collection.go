package compat

import (
	"fmt"
	"io"
	"strings"
)

// ErrorCollection accumulates incompatibility findings for one comparison
// run. Records are append-only and kept in insertion order; that order is
// the only ordering the collection ever exposes. Duplicate codes are legal
// and meaningful (the same command can fail under several rules).
//
// The collection is not safe for concurrent mutation. Parallel drivers give
// each worker its own collection and combine them with Merge afterwards.
type ErrorCollection struct {
	errors []Error
}

// NewErrorCollection returns an empty collection.
func NewErrorCollection() *ErrorCollection {
	return &ErrorCollection{}
}

// Add constructs a record and appends it. The code is not validated against
// the registry here; the Context is responsible for only passing registered
// codes.
func (c *ErrorCollection) Add(code Code, command, msg, oldDir, newDir, file string) {
	c.errors = append(c.errors, Error{
		Code:    code,
		Command: command,
		Message: msg,
		OldDir:  oldDir,
		NewDir:  newDir,
		File:    file,
	})
}

// HasErrors reports whether at least one record exists. This is the single
// pass/fail gate for a comparison run.
func (c *ErrorCollection) HasErrors() bool {
	return len(c.errors) > 0
}

// Contains reports whether any record carries the given code.
func (c *ErrorCollection) Contains(code Code) bool {
	for i := range c.errors {
		if c.errors[i].Code == code {
			return true
		}
	}
	return false
}

// FirstByCode returns the earliest record with the given code.
func (c *ErrorCollection) FirstByCode(code Code) (Error, bool) {
	for i := range c.errors {
		if c.errors[i].Code == code {
			return c.errors[i], true
		}
	}
	return Error{}, false
}

// FirstByCommand returns the earliest record for the given command.
func (c *ErrorCollection) FirstByCommand(command string) (Error, bool) {
	for i := range c.errors {
		if c.errors[i].Command == command {
			return c.errors[i], true
		}
	}
	return Error{}, false
}

// FirstByCommandAndCode returns the earliest record for the given command
// carrying the given code.
func (c *ErrorCollection) FirstByCommandAndCode(command string, code Code) (Error, bool) {
	for i := range c.errors {
		if c.errors[i].Command == command && c.errors[i].Code == code {
			return c.errors[i], true
		}
	}
	return Error{}, false
}

// AllByCommand returns every record for the given command in insertion
// order. The result is empty, never nil-failure, when nothing matches.
func (c *ErrorCollection) AllByCommand(command string) []Error {
	out := []Error{}
	for i := range c.errors {
		if c.errors[i].Command == command {
			out = append(out, c.errors[i])
		}
	}
	return out
}

// Errors returns a read-only view of the records in insertion order.
// Callers must not modify the returned slice.
func (c *ErrorCollection) Errors() []Error {
	return c.errors
}

// Render returns one formatted line per record, in insertion order.
func (c *ErrorCollection) Render() []string {
	out := make([]string, 0, len(c.errors))
	for i := range c.errors {
		out = append(out, c.errors[i].String())
	}
	return out
}

// Dump writes the full report: a header, every rendered line separated by
// blank lines, and a trailing count. It does not alter the collection.
func (c *ErrorCollection) Dump(w io.Writer) {
	fmt.Fprintln(w, "Errors found while checking IDL compatibility")
	for _, line := range c.Render() {
		fmt.Fprintf(w, "%s\n\n", line)
	}
	fmt.Fprintf(w, "Found %d errors\n", c.Count())
}

// Count returns the number of records.
func (c *ErrorCollection) Count() int {
	return len(c.errors)
}

// Merge appends every record of other, preserving other's internal order.
func (c *ErrorCollection) Merge(other *ErrorCollection) {
	c.errors = append(c.errors, other.errors...)
}

// String joins all rendered lines with ", ". Diagnostic convenience form;
// Dump is the report format.
func (c *ErrorCollection) String() string {
	return strings.Join(c.Render(), ", ")
}
