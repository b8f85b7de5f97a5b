// Package setup implements initialization for all application packages.
package setup

import (
	"os"

	isatty "github.com/mattn/go-isatty"
	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/display"
	"github.com/fossas/vcsfetch/config"
	"github.com/fossas/vcsfetch/services"
	"github.com/fossas/vcsfetch/vcs"
)

// SetContext initializes all application-level packages and returns the VCS
// registry commands should use.
func SetContext(ctx *cli.Context) (*vcs.Registry, services.Services, error) {
	// Set up configuration.
	err := config.SetContext(ctx)
	if err != nil {
		return nil, services.Services{}, err
	}

	// Set up logging.
	display.SetInteractive(config.Interactive())
	display.SetDebug(config.Debug())

	// Prompts read from STDIN, so they need a terminal there.
	svc := services.New(isatty.IsTerminal(os.Stdin.Fd()), config.AssumeYes())
	r := vcs.NewRegistry(svc)
	r.Initialize()
	return r, svc, nil
}
