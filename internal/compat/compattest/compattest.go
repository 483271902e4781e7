// Package compattest layers fail-on-miss lookups over the total
// ErrorCollection API for use in tests that have already established a
// record must exist.
package compattest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"idlcheck/internal/compat"
)

// MustFirstByCode returns the earliest record with the given code, failing
// the test when none exists.
func MustFirstByCode(t *testing.T, c *compat.ErrorCollection, code compat.Code) compat.Error {
	t.Helper()
	err, ok := c.FirstByCode(code)
	require.True(t, ok, "no error with code %s in collection: %s", code, c)
	return err
}

// MustFirstByCommand returns the earliest record for the given command,
// failing the test when none exists.
func MustFirstByCommand(t *testing.T, c *compat.ErrorCollection, command string) compat.Error {
	t.Helper()
	err, ok := c.FirstByCommand(command)
	require.True(t, ok, "no error for command %q in collection: %s", command, c)
	return err
}

// MustFirstByCommandAndCode returns the earliest record for the given
// command carrying the given code, failing the test when none exists.
func MustFirstByCommandAndCode(t *testing.T, c *compat.ErrorCollection, command string, code compat.Code) compat.Error {
	t.Helper()
	err, ok := c.FirstByCommandAndCode(command, code)
	require.True(t, ok, "no error for command %q with code %s in collection: %s", command, code, c)
	return err
}
