package entity

import (
	"fmt"

	"github.com/hpungsan/imgup/internal/config"
	"github.com/hpungsan/imgup/internal/imgur"
)

// Album represents the optional remote grouping resource. It has no local
// file behind it; an album exists iff ID is set.
type Album struct {
	ID         string
	Deletehash string // always sanitized before storage
}

// Link returns the public album URL, or "" when no album was created.
func (a *Album) Link(cfg *config.Config) string {
	if a.ID == "" {
		return ""
	}
	return imgur.Endpoint(cfg.SiteBase).Join("a").Join(a.ID).String()
}

// DeleteCommand returns a ready-to-run shell command that deletes the album
// through the API.
func (a *Album) DeleteCommand(cfg *config.Config) string {
	return deleteCommand(cfg, "album", a.Deletehash)
}

// HistoryLine returns the single-line journal record for this album.
func (a *Album) HistoryLine(cfg *config.Config) string {
	return fmt.Sprintf("type=album id=[%s] link=[%s] delete_command=[%s]",
		a.ID, a.Link(cfg), a.DeleteCommand(cfg))
}
