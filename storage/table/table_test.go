package table_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motembo/campus/storage/table"
)

func TestReadAbsentTable(t *testing.T) {
	store := table.NewStore(t.TempDir(), ".csv", ",")

	rows, err := store.Read("users")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := table.NewStore(t.TempDir(), ".csv", ",")

	in := [][]string{
		{"alice", "pw", "student"},
		{"bob", "pw", "faculty"},
		{"carol", "pw", "admin"},
	}
	require.NoError(t, store.Write("users", in))

	out, err := store.Read("users")
	require.NoError(t, err)
	assert.Equal(t, in, out, "row and field order must be preserved")
}

func TestWriteReplacesContents(t *testing.T) {
	store := table.NewStore(t.TempDir(), ".csv", ",")

	require.NoError(t, store.Write("grades", [][]string{{"s1", "CS101", "A", "3"}}))
	require.NoError(t, store.Write("grades", [][]string{{"s2", "CS102", "B", "4"}}))

	out, err := store.Read("grades")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"s2", "CS102", "B", "4"}}, out)
}

func TestReadSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	store := table.NewStore(dir, ".csv", ",")

	content := "alice,pw,student\n\n\nbob,pw,admin\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.csv"), []byte(content), 0o644))

	out, err := store.Read("users")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"alice", "pw", "student"}, {"bob", "pw", "admin"}}, out)
}

func TestAppend(t *testing.T) {
	store := table.NewStore(t.TempDir(), ".csv", ",")

	require.NoError(t, store.Append("messages", []string{"a", "b", "hi", "2024-05-01 10:00:00"}))
	require.NoError(t, store.Append("messages", []string{"b", "a", "yo", "2024-05-01 10:00:01"}))

	out, err := store.Read("messages")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "hi", out[0][2])
	assert.Equal(t, "yo", out[1][2])
}

func TestReadLongRows(t *testing.T) {
	store := table.NewStore(t.TempDir(), ".csv", ",")

	// a single field can exceed bufio.Scanner's default 64KB token limit
	long := strings.Repeat("x", 70*1024)
	require.NoError(t, store.Append("messages", []string{"a", "b", long, "2024-05-01 10:00:00"}))
	require.NoError(t, store.Append("messages", []string{"b", "a", "short", "2024-05-01 10:00:01"}))

	out, err := store.Read("messages")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, long, out[0][2])
	assert.Equal(t, "short", out[1][2])
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := table.NewStore(dir, ".csv", ",")

	require.NoError(t, store.Write("users", [][]string{{"a", "b", "c"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.csv", entries[0].Name())
}
