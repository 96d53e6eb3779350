package entity

import (
	"fmt"
	"path/filepath"

	"github.com/hpungsan/imgup/internal/config"
	"github.com/hpungsan/imgup/internal/imgur"
)

// DeletedMarker replaces the display name of an image whose local file was
// removed after a successful upload.
const DeletedMarker = "<deleted>"

// Image represents one local file's journey to a remote resource.
// ID, Deletehash and Link are all-or-nothing: either all empty (never
// uploaded) or all set, and Uploaded reflects exactly that.
type Image struct {
	Path              string // local source path, immutable after creation
	File              string // display name; DeletedMarker once the local file is gone
	ID                string
	Deletehash        string // always sanitized before storage
	Link              string
	Uploaded          bool
	DeleteAfterUpload bool
}

// NewImage creates an unuploaded image entity for the given local path.
func NewImage(path string, deleteAfterUpload bool) *Image {
	return &Image{
		Path:              path,
		File:              filepath.Base(path),
		DeleteAfterUpload: deleteAfterUpload,
	}
}

// MarkUploaded records a successful upload. This is the entity's only
// mutation: all remote fields are set together, with the deletehash
// sanitized on the way in.
func (i *Image) MarkUploaded(id, link, deletehash string) {
	i.ID = id
	i.Link = link
	i.Deletehash = SanitizeToken(deletehash)
	i.Uploaded = true
}

// DeleteLink returns the public URL that triggers deletion of the remote
// image, or "" when the image was never uploaded.
func (i *Image) DeleteLink(cfg *config.Config) string {
	if !i.Uploaded {
		return ""
	}
	return imgur.Endpoint(cfg.SiteBase).Join("delete").Join(i.Deletehash).String()
}

// DeleteCommand returns a ready-to-run shell command that deletes the remote
// image through the API.
func (i *Image) DeleteCommand(cfg *config.Config) string {
	return deleteCommand(cfg, "image", i.Deletehash)
}

// HistoryLine returns the single-line journal record for this image.
func (i *Image) HistoryLine(cfg *config.Config) string {
	return fmt.Sprintf("type=image file=[%s] id=[%s] link=[%s] delete_command=[%s]",
		i.File, i.ID, i.Link, i.DeleteCommand(cfg))
}

// deleteCommand builds the reversal command shared by images and albums.
// The deletehash is sanitized before it is stored on an entity, so the
// interpolation here cannot break the command syntax.
func deleteCommand(cfg *config.Config, kind, deletehash string) string {
	endpoint := imgur.Endpoint(cfg.APIBase).Join(kind).Join(deletehash)
	return fmt.Sprintf("curl -X DELETE -H %q %s", "Authorization: Client-ID "+cfg.ClientID, endpoint)
}
