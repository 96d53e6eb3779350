// Package screenshot captures a single interactive region selection via the
// platform's external selection tool.
package screenshot

import (
	"crypto/rand"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/imgup/internal/errors"
)

// Capture invokes the selection tool and returns the path of the captured
// PNG. An aborted selection (non-zero exit, or an exit without an output
// file) returns an ErrCaptureInterrupted error and the run must not upload
// anything.
func Capture() (string, error) {
	path := filepath.Join(os.TempDir(), "imgup-"+newULID()+".png")

	cmd, err := captureCommand(path)
	if err != nil {
		return "", err
	}
	if err := cmd.Run(); err != nil {
		os.Remove(path)
		return "", errors.NewCaptureInterrupted()
	}

	// Some tools exit 0 on a cancelled selection without writing a file.
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		os.Remove(path)
		return "", errors.NewCaptureInterrupted()
	}
	return path, nil
}

// captureCommand picks the platform selection tool writing to path.
func captureCommand(path string) (*exec.Cmd, error) {
	if runtime.GOOS == "darwin" {
		return exec.Command("screencapture", "-i", "-o", path), nil
	}
	for _, tool := range [][]string{
		{"maim", "-s", path},
		{"import", path},
	} {
		if _, err := exec.LookPath(tool[0]); err == nil {
			return exec.Command(tool[0], tool[1:]...), nil
		}
	}
	return nil, errors.NewInvalidInput("no screenshot tool found: install maim or ImageMagick")
}

// newULID generates the unique part of the capture's temp file name.
func newULID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
