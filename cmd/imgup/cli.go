package main

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/hpungsan/imgup/internal/config"
	"github.com/hpungsan/imgup/internal/entity"
	"github.com/hpungsan/imgup/internal/errors"
	"github.com/hpungsan/imgup/internal/imgur"
	"github.com/hpungsan/imgup/internal/journal"
	"github.com/hpungsan/imgup/internal/ops"
	"github.com/hpungsan/imgup/internal/screenshot"
)

// newCLIApp creates the CLI application. cfg may be nil only when rendering
// help or version output.
func newCLIApp(cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:      "imgup",
		Usage:     "Upload images to imgur, grouped into an album, with a reversal journal",
		ArgsUsage: "[files...]",
		Version:   Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "screenshot", Aliases: []string{"s"}, Usage: "Capture a screen region and upload it (ignores file arguments)"},
			&cli.BoolFlag{Name: "delete", Aliases: []string{"d"}, Usage: "Delete local files after a successful upload"},
		},
		Action: func(c *cli.Context) error {
			return run(c, cfg)
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// run is the single default action: build the batch, upload it, print the
// summary, and map failures to exit codes.
func run(c *cli.Context, cfg *config.Config) error {
	if c.NArg() == 0 && !c.Bool("screenshot") {
		_ = cli.ShowAppHelp(c)
		return cli.Exit("", 1)
	}

	var images []*entity.Image
	if c.Bool("screenshot") {
		path, err := screenshot.Capture()
		if err != nil {
			return outputError(err)
		}
		// The capture is a throwaway temp file; remove it after upload.
		images = append(images, entity.NewImage(path, true))
	} else {
		for _, p := range ops.EligiblePaths(c.Args().Slice(), c.App.ErrWriter) {
			images = append(images, entity.NewImage(p, c.Bool("delete")))
		}
	}

	jrnl := journal.New(cfg.JournalPath)
	defer jrnl.Close()

	uploader := &ops.Uploader{
		Client:  imgur.NewClient(cfg),
		Journal: jrnl,
		Config:  cfg,
		Out:     c.App.ErrWriter,
	}

	out, err := uploader.Run(c.Context, images)
	printSummary(c.App.Writer, cfg, out)
	if err != nil {
		return outputError(err)
	}
	return nil
}

// printSummary renders the per-file result table in input order, then the
// album link when one was created.
func printSummary(w io.Writer, cfg *config.Config, out *ops.UploadOutput) {
	if len(out.Images) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Delete link", "Link"})
	for _, img := range out.Images {
		table.Append([]string{img.File, img.DeleteLink(cfg), img.Link})
	}
	table.Render()

	if out.Album.ID != "" {
		fmt.Fprintf(w, "Album: %s\n", out.Album.Link(cfg))
	}
}

// outputError formats an error as a CLI exit error with code 1.
func outputError(err error) error {
	var appErr *errors.ImgupError
	if stderrors.As(err, &appErr) {
		return cli.Exit(appErr.Message, 1)
	}
	return cli.Exit(err.Error(), 1)
}
