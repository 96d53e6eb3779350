package ops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// allowedExtensions are the upload-eligible file types.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// EligiblePaths filters args to readable files with a supported extension,
// preserving order. Rejected entries are reported to out and skipped; they
// are never fatal for the batch.
func EligiblePaths(paths []string, out io.Writer) []string {
	eligible := make([]string, 0, len(paths))
	for _, p := range paths {
		if !allowedExtensions[strings.ToLower(filepath.Ext(p))] {
			fmt.Fprintf(out, "Skipping %s: unsupported file type\n", p)
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			fmt.Fprintf(out, "Skipping %s: %v\n", p, err)
			continue
		}
		f.Close()
		eligible = append(eligible, p)
	}
	return eligible
}
