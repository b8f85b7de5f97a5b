package clone

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmdutil"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/flags"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/setup"
	"github.com/fossas/vcsfetch/config"
)

var Cmd = cli.Command{
	Name:      "clone",
	Usage:     "Clone a repository into a directory",
	ArgsUsage: "<source> <dest>",
	Action:    Run,
	Flags:     flags.WithGlobalFlags(flags.WithFetchFlags(nil)),
}

func Run(ctx *cli.Context) error {
	r, _, err := setup.SetContext(ctx)
	if err != nil {
		return err
	}
	if err := cmdutil.ExactArgs(ctx, "source", "dest"); err != nil {
		return err
	}

	id, err := config.VCS()
	if err != nil {
		return err
	}
	v, err := cmdutil.Lookup(r, id)
	if err != nil {
		return err
	}

	source, dest := ctx.Args().Get(0), ctx.Args().Get(1)
	err = cmdutil.Clone(v, dest, source, config.Branch(), config.Version(), config.Settings())
	if err != nil {
		return err
	}
	fmt.Printf("Cloned %s into %s\n", source, color.GreenString(dest))
	return nil
}
