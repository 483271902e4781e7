package compat

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryIsUnique(t *testing.T) {
	require.NoError(t, ValidateCodes())

	seen := make(map[Code]struct{})
	for _, c := range Codes() {
		_, dup := seen[c]
		require.False(t, dup, "code %s appears twice", c)
		seen[c] = struct{}{}
	}
}

func TestRegistryShape(t *testing.T) {
	codes := Codes()
	require.Len(t, codes, 61)
	require.Equal(t, CodeCommandInvalidAPIVersion, codes[0])
	require.Equal(t, CodeTypeNotArray, codes[len(codes)-1])

	// Fixed prefix, zero-padded four digit ordinal. Part of the public
	// contract consumed by negative-test suites.
	form := regexp.MustCompile(`^ID\d{4}$`)
	for _, c := range codes {
		require.True(t, form.MatchString(string(c)), "code %q breaks the ID0000 scheme", c)
		require.NotEmpty(t, c.Title(), "code %s has no title", c)
	}
}

func TestCodeValuesAreStable(t *testing.T) {
	// Spot checks pinning numeric assignments that external suites rely on.
	pinned := map[Code]string{
		CodeCommandInvalidAPIVersion:       "ID0001",
		CodeRemovedCommand:                 "ID0003",
		CodeMissingErrorReplyStruct:        "ID0025",
		CodeRemovedCommandParameter:        "ID0028",
		CodeOldCommandParameterTypeBSONAny: "ID0033",
		CodeNewCommandVariantNotSuperset:   "ID0056",
		CodeTypeNotArray:                   "ID0061",
	}
	for c, want := range pinned {
		require.Equal(t, want, c.String())
	}
}
