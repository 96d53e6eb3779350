//go:build windows

package journal

import "os"

// lockFile is a no-op on Windows, where flock-style advisory locks are not
// available. Concurrent runs are already rare for an interactive uploader;
// O_APPEND keeps individual lines intact.
func lockFile(_ *os.File) error {
	return nil
}

// unlockFile is a no-op on Windows. See lockFile.
func unlockFile(_ *os.File) error {
	return nil
}
