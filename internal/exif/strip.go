// Package exif removes EXIF metadata from images before they leave the
// machine. It only ever runs against the uploader's private temporary copy,
// never the caller's original file.
package exif

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"
)

// Strip removes EXIF metadata from the image at path, in place. JPEGs are
// probed first so images without metadata skip the exiftool invocation
// entirely. A returned error means the file may still carry metadata; the
// caller decides whether that blocks the upload.
func Strip(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".jpg" || ext == ".jpeg" {
		has, err := hasEXIF(path)
		if err == nil && !has {
			return nil
		}
	}

	tool, err := exec.LookPath("exiftool")
	if err != nil {
		return fmt.Errorf("exiftool not found in PATH")
	}
	out, err := exec.Command(tool, "-all=", "-overwrite_original", path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("exiftool: %v: %s", err, bytes.TrimSpace(out))
	}
	return nil
}

// hasEXIF reports whether the JPEG at path carries an EXIF block. A decode
// failure is treated as "no metadata".
func hasEXIF(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := goexif.Decode(f); err != nil {
		return false, nil
	}
	return true, nil
}
