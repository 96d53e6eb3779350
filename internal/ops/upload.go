package ops

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/imgup/internal/config"
	"github.com/hpungsan/imgup/internal/entity"
	"github.com/hpungsan/imgup/internal/errors"
	"github.com/hpungsan/imgup/internal/exif"
	"github.com/hpungsan/imgup/internal/imgur"
	"github.com/hpungsan/imgup/internal/journal"
)

// Uploader drives a batch of image entities through upload and decides
// whether to group them into an album.
type Uploader struct {
	Client  *imgur.Client
	Journal *journal.Journal
	Config  *config.Config
	Out     io.Writer // progress, warnings and per-item errors
}

// UploadOutput contains the result of a batch run.
type UploadOutput struct {
	Images        []*entity.Image
	Album         *entity.Album
	UploadedCount int
}

// Run uploads every image strictly sequentially, in input order, waiting for
// each response before starting the next. With more than one success the
// uploads are grouped into an album; with exactly one there is nothing to
// group; with zero the run fails with ErrNoUploads. Per-item failures are
// reported to Out and never stop the batch.
func (u *Uploader) Run(ctx context.Context, images []*entity.Image) (*UploadOutput, error) {
	for _, img := range images {
		u.uploadOne(ctx, img)
	}

	out := &UploadOutput{Images: images, Album: &entity.Album{}}
	for _, img := range images {
		if img.Uploaded {
			out.UploadedCount++
		}
	}

	switch {
	case out.UploadedCount == 0:
		return out, errors.NewNoUploads()
	case out.UploadedCount > 1:
		u.createAlbum(ctx, out)
	}
	return out, nil
}

// uploadOne runs a single upload attempt: copy the source aside, strip
// metadata from the copy, submit it, and on success journal the entity.
// The temporary copy is removed when the attempt finishes either way.
func (u *Uploader) uploadOne(ctx context.Context, img *entity.Image) {
	tmp, err := copyToTemp(img.Path)
	if err != nil {
		fmt.Fprintln(u.Out, errors.NewUploadFailed(img.File, err.Error()))
		return
	}
	defer os.Remove(tmp)

	if err := exif.Strip(tmp); err != nil {
		fmt.Fprintf(u.Out, "Warning: could not strip metadata from %s: %v\n", img.File, err)
	}

	res, err := u.Client.UploadImage(ctx, tmp)
	if err != nil {
		fmt.Fprintln(u.Out, errors.NewUploadFailed(img.File, err.Error()))
		return
	}
	img.MarkUploaded(res.ID, res.Link, res.Deletehash)

	if img.DeleteAfterUpload {
		if err := os.Remove(img.Path); err != nil {
			fmt.Fprintf(u.Out, "Warning: could not delete %s: %v\n", img.Path, err)
		} else {
			img.File = entity.DeletedMarker
		}
	}

	u.Journal.Write(img.HistoryLine(u.Config))
	fmt.Fprintf(u.Out, "Uploaded %s: %s\n", img.File, img.Link)
}

// createAlbum issues the one album call for a multi-image success, joining
// the sanitized deletehashes of every uploaded entity. A failure is reported
// and leaves the album without an ID; the already-journaled image entries
// stay as they are.
func (u *Uploader) createAlbum(ctx context.Context, out *UploadOutput) {
	hashes := make([]string, 0, out.UploadedCount)
	for _, img := range out.Images {
		if img.Uploaded {
			hashes = append(hashes, img.Deletehash)
		}
	}

	res, err := u.Client.CreateAlbum(ctx, hashes, u.Config.AlbumLayout)
	if err != nil {
		fmt.Fprintln(u.Out, errors.NewAlbumFailed(err.Error()))
		return
	}
	out.Album.ID = res.ID
	out.Album.Deletehash = entity.SanitizeToken(res.Deletehash)
	u.Journal.Write(out.Album.HistoryLine(u.Config))
}

// copyToTemp copies path to a private temp file so metadata stripping never
// mutates the caller's original.
func copyToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp := filepath.Join(os.TempDir(), "imgup-"+newULID()+filepath.Ext(path))
	dst, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

// newULID generates the unique part of a temp copy's file name.
func newULID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
