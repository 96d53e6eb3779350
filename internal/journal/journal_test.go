package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// readLines returns the journal's lines without the trailing empty element.
func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := strings.TrimSuffix(string(data), "\n")
	return strings.Split(content, "\n")
}

func TestJournal_LazyInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	j := New(path)
	defer j.Close()

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "journal file must not exist before the first write")
}

func TestJournal_SessionMarkersPrecedeEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	j := New(path)
	defer j.Close()

	j.Write("type=image file=[a.jpg]")

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	require.Equal(t, strings.Repeat("-", 60), lines[0])

	_, err := time.ParseInLocation("2006-01-02T15:04:05", lines[1], time.Local)
	require.NoError(t, err, "second line must be the session timestamp")

	require.Equal(t, "type=image file=[a.jpg]", lines[2])
}

func TestJournal_WriteOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	j := New(path)
	defer j.Close()

	j.Write("one", "two")
	j.Write("three")

	lines := readLines(t, path)
	require.Equal(t, []string{"one", "two", "three"}, lines[2:])
}

func TestJournal_AppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")

	j1 := New(path)
	j1.Write("first run")
	require.NoError(t, j1.Close())

	j2 := New(path)
	j2.Write("second run")
	require.NoError(t, j2.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 6, "two session blocks of separator+timestamp+entry")
	require.Equal(t, "first run", lines[2])
	require.Equal(t, strings.Repeat("-", 60), lines[3])
	require.Equal(t, "second run", lines[5])
}

func TestJournal_InitFailureIsSilent(t *testing.T) {
	// Parent "directory" is a regular file, so MkdirAll fails.
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	j := New(filepath.Join(blocker, "sub", "history.log"))
	defer j.Close()

	j.Write("dropped")
	j.Write("also dropped")

	_, err := os.Stat(filepath.Join(blocker, "sub"))
	require.Error(t, err, "nothing must be created after a failed init")
}

func TestJournal_CloseWithoutWrite(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "history.log"))
	require.NoError(t, j.Close())
	require.NoError(t, j.Close(), "double close must be safe")
}
