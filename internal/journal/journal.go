package journal

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	separatorWidth  = 60
	timestampLayout = "2006-01-02T15:04:05"
)

// Journal is the append-only audit log of created remote resources. It is
// best-effort: uploads never depend on it. Initialization is lazy (nothing is
// opened until the first Write) and, once it fails, every later write is a
// silent no-op for the rest of the run.
type Journal struct {
	path   string
	file   *os.File
	failed bool
}

// New creates a journal that will append to the file at path. The file is
// not touched until the first Write.
func New(path string) *Journal {
	return &Journal{path: path}
}

// Write appends each line, newline-terminated, in argument order. On first
// use it opens and exclusively locks the journal file, then writes the
// session markers (separator line and local timestamp) before any entry.
func (j *Journal) Write(lines ...string) {
	if j.failed {
		return
	}
	if j.file == nil {
		if err := j.open(); err != nil {
			j.failed = true
			return
		}
	}
	for _, line := range lines {
		if _, err := j.file.WriteString(line + "\n"); err != nil {
			return
		}
	}
}

// open initializes the journal: create the directory and file if absent,
// take the exclusive advisory lock for the rest of the process, and write
// this run's session markers. Writes go straight to the file handle, so
// every line is flushed as it is written.
func (j *Journal) open() error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return err
	}
	j.file = f

	if _, err := f.WriteString(strings.Repeat("-", separatorWidth) + "\n"); err != nil {
		return nil // locked and open; later writes may still succeed
	}
	_, _ = f.WriteString(time.Now().Format(timestampLayout) + "\n")
	return nil
}

// Close releases the lock and closes the journal file. It is safe to call
// when the journal was never written to, and is expected to run on every
// exit path via defer.
func (j *Journal) Close() error {
	if j.file == nil {
		return nil
	}
	_ = unlockFile(j.file)
	err := j.file.Close()
	j.file = nil
	return err
}
