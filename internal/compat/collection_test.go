package compat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectionStartsEmpty(t *testing.T) {
	c := NewErrorCollection()

	require.False(t, c.HasErrors())
	require.Zero(t, c.Count())
	require.Empty(t, c.Render())
	require.Equal(t, "", c.String())
	require.Empty(t, c.AllByCommand("missingCmd"))

	_, ok := c.FirstByCode(CodeRemovedCommand)
	require.False(t, ok)
	_, ok = c.FirstByCommand("missingCmd")
	require.False(t, ok)
	_, ok = c.FirstByCommandAndCode("missingCmd", CodeRemovedCommand)
	require.False(t, ok)
}

func TestCollectionPreservesInsertionOrder(t *testing.T) {
	c := NewErrorCollection()
	c.Add(CodeRemovedCommand, "alpha", "first", "/old", "/new", "a.idl")
	c.Add(CodeRemovedCommand, "beta", "second", "/old", "/new", "b.idl")
	c.Add(CodeCommandInvalidAPIVersion, "alpha", "third", "/old", "/new", "a.idl")

	require.True(t, c.HasErrors())
	require.Equal(t, 3, c.Count())

	lines := c.Render()
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "first")
	require.Contains(t, lines[1], "second")
	require.Contains(t, lines[2], "third")

	// Duplicate codes are legal and kept.
	require.True(t, c.Contains(CodeRemovedCommand))
	first, ok := c.FirstByCode(CodeRemovedCommand)
	require.True(t, ok)
	require.Equal(t, "first", first.Message)

	byCmd, ok := c.FirstByCommand("alpha")
	require.True(t, ok)
	require.Equal(t, "first", byCmd.Message)

	both, ok := c.FirstByCommandAndCode("alpha", CodeCommandInvalidAPIVersion)
	require.True(t, ok)
	require.Equal(t, "third", both.Message)

	all := c.AllByCommand("alpha")
	require.Len(t, all, 2)
	require.Equal(t, "first", all[0].Message)
	require.Equal(t, "third", all[1].Message)
}

func TestCollectionGrowthIsMonotonic(t *testing.T) {
	c := NewErrorCollection()
	require.False(t, c.HasErrors())
	for i := 0; i < 5; i++ {
		c.Add(CodeRemovedCommand, "cmd", "msg", "/old", "/new", "f.idl")
		require.True(t, c.HasErrors())
	}
	require.Equal(t, 5, c.Count())
}

func TestDumpFormat(t *testing.T) {
	c := NewErrorCollection()
	c.Add(CodeRemovedCommand, "cmd", "Old command 'cmd' was removed from new commands.",
		"/a/old_dir", "/b/new_dir", "f.idl")

	var buf strings.Builder
	c.Dump(&buf)

	want := "Errors found while checking IDL compatibility\n" +
		"Comparing old_dir and new_dir: Error in f.idl: ID0003: Old command 'cmd' was removed from new commands.\n" +
		"\n" +
		"Found 1 errors\n"
	require.Equal(t, want, buf.String())

	// Dump is a pure side effect.
	require.Equal(t, 1, c.Count())
}

func TestStringJoinsWithCommas(t *testing.T) {
	c := NewErrorCollection()
	c.Add(CodeRemovedCommand, "a", "one", "/old", "/new", "f.idl")
	c.Add(CodeRemovedCommand, "b", "two", "/old", "/new", "f.idl")

	joined := c.String()
	require.Equal(t, 1, strings.Count(joined, ", "))
	require.Contains(t, joined, "one")
	require.Contains(t, joined, "two")
}

func TestMergeConcatenates(t *testing.T) {
	a := NewErrorCollection()
	a.Add(CodeRemovedCommand, "x", "a1", "/old", "/new", "f.idl")
	a.Add(CodeRemovedCommand, "x", "a2", "/old", "/new", "f.idl")

	b := NewErrorCollection()
	b.Add(CodeCommandInvalidAPIVersion, "y", "b1", "/old", "/new", "g.idl")

	a.Merge(b)
	require.Equal(t, 3, a.Count())
	require.Equal(t, "a1", a.Errors()[0].Message)
	require.Equal(t, "a2", a.Errors()[1].Message)
	require.Equal(t, "b1", a.Errors()[2].Message)
}
