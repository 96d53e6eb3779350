package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/imgup/internal/config"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v"
}

func main() {
	// Handle --help/--version before config load (no credential needed)
	if isHelpOrVersion() {
		_ = newCLIApp(nil).Run(os.Args)
		return
	}

	baseDir, err := config.DefaultBaseDir()
	if err != nil {
		fail(err)
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		fail(err)
	}

	app := newCLIApp(cfg)
	if err := app.Run(os.Args); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		code := 1
		var exitErr cli.ExitCoder
		if stderrors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		os.Exit(code)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
