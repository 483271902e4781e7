package checker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"idlcheck/internal/compat"
	"idlcheck/internal/compat/compattest"
)

func writeIDL(t *testing.T, dir, rel, src string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
}

func TestCheckDirsEmpty(t *testing.T) {
	coll, err := CheckDirs(context.Background(), t.TempDir(), t.TempDir(), nil, Options{})
	require.NoError(t, err)
	require.False(t, coll.HasErrors())
}

func TestCheckDirsIdenticalTrees(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	writeIDL(t, oldDir, "api.idl", baseIDL)
	writeIDL(t, newDir, "api.idl", baseIDL)

	coll, err := CheckDirs(context.Background(), oldDir, newDir, nil, Options{})
	require.NoError(t, err)
	require.False(t, coll.HasErrors(), "unexpected errors: %s", coll)
}

func TestCheckDirsReportsPerFile(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	writeIDL(t, oldDir, "api.idl", baseIDL)
	writeIDL(t, newDir, "api.idl", withParamType("anyType"))

	coll, err := CheckDirs(context.Background(), oldDir, newDir, nil, Options{})
	require.NoError(t, err)
	rec := compattest.MustFirstByCode(t, coll, compat.CodeNewCommandParameterTypeBSONAny)
	require.Equal(t, "api.idl", rec.File)
	require.Equal(t, oldDir, rec.OldDir)
}

func TestCheckDirsMissingNewFile(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	writeIDL(t, oldDir, "api.idl", baseIDL)

	coll, err := CheckDirs(context.Background(), oldDir, newDir, nil, Options{})
	require.NoError(t, err)
	rec := compattest.MustFirstByCode(t, coll, compat.CodeRemovedCommand)
	require.Equal(t, "testCommand", rec.Command)
}

func TestCheckDirsDuplicateCommands(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	writeIDL(t, oldDir, "a.idl", baseIDL)
	writeIDL(t, oldDir, "b.idl", baseIDL)
	writeIDL(t, newDir, "a.idl", baseIDL)
	writeIDL(t, newDir, "b.idl", baseIDL)

	coll, err := CheckDirs(context.Background(), oldDir, newDir, nil, Options{})
	require.NoError(t, err)
	rec := compattest.MustFirstByCode(t, coll, compat.CodeDuplicateCommandName)
	// a.idl sorts first, so the duplicate lands on b.idl.
	require.Equal(t, "b.idl", rec.File)
	require.Equal(t, "testCommand", rec.Command)
}

func TestCheckDirsDeterministicOrder(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	for i, rel := range []string{"a.idl", "sub/b.idl", "sub/c.idl"} {
		src := strings.Replace(baseIDL, "testCommand:", fmt.Sprintf("command%d:", i), 1)
		writeIDL(t, oldDir, rel, src)
	}
	// Leave newDir empty so every file reports a removed command and a
	// missing ErrorReply struct.

	first, err := CheckDirs(context.Background(), oldDir, newDir, nil, Options{Jobs: 4})
	require.NoError(t, err)
	second, err := CheckDirs(context.Background(), oldDir, newDir, nil, Options{Jobs: 1})
	require.NoError(t, err)
	require.Equal(t, first.Render(), second.Render())
	require.Equal(t, 6, first.Count())
	require.False(t, first.Contains(compat.CodeDuplicateCommandName))
}

func TestCheckDirsParseErrorFails(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	writeIDL(t, oldDir, "api.idl", "commands: [not, a, mapping")
	writeIDL(t, newDir, "api.idl", baseIDL)

	_, err := CheckDirs(context.Background(), oldDir, newDir, nil, Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "api.idl")
}

func TestCheckDirsCachedRunMatchesCold(t *testing.T) {
	oldDir, newDir, cacheDir := t.TempDir(), t.TempDir(), t.TempDir()
	writeIDL(t, oldDir, "api.idl", baseIDL)
	writeIDL(t, newDir, "api.idl", withParamType("int"))

	opts := Options{CacheDir: cacheDir}
	cold, err := CheckDirs(context.Background(), oldDir, newDir, nil, opts)
	require.NoError(t, err)
	warm, err := CheckDirs(context.Background(), oldDir, newDir, nil, opts)
	require.NoError(t, err)
	require.Equal(t, cold.Render(), warm.Render())
	require.True(t, warm.Contains(compat.CodeCommandParameterTypeNotSuperset))
}

func TestCheckDirsEmitsEvents(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	writeIDL(t, oldDir, "api.idl", baseIDL)
	writeIDL(t, newDir, "api.idl", baseIDL)

	events := make(chan Event, 16)
	_, err := CheckDirs(context.Background(), oldDir, newDir, nil, Options{Events: events})
	require.NoError(t, err)
	close(events)

	var done bool
	for ev := range events {
		require.Equal(t, "api.idl", ev.File)
		if ev.Stage == StageCompare && ev.Status == StatusDone {
			done = true
		}
	}
	require.True(t, done, "expected a done event for api.idl")
}

func TestListIDLFilesSortedRelative(t *testing.T) {
	dir := t.TempDir()
	writeIDL(t, dir, "b.idl", baseIDL)
	writeIDL(t, dir, "a.idl", baseIDL)
	writeIDL(t, dir, "sub/c.idl", baseIDL)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	files, err := ListIDLFiles(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"a.idl", "b.idl", filepath.Join("sub", "c.idl")}, files)
}
