package app

import (
	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmd/clone"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmd/get"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmd/install"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmd/status"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmd/update"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmd/which"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/flags"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/version"
)

func New() *cli.App {
	return &cli.App{
		Name:                 "vcsfetch",
		Usage:                "Fetch and update library sources from Git and Mercurial repositories",
		Version:              version.String(),
		Action:               install.Run,
		EnableBashCompletion: true,
		Flags:                flags.WithGlobalFlags(nil),
		Commands: []cli.Command{
			clone.Cmd,
			get.Cmd,
			update.Cmd,
			install.Cmd,
			which.Cmd,
			status.Cmd,
		},
	}
}
