package get

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmdutil"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/flags"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/setup"
	"github.com/fossas/vcsfetch/config"
	"github.com/fossas/vcsfetch/library"
)

var Cmd = cli.Command{
	Name:      "get",
	Usage:     "Fetch a library into the library root",
	ArgsUsage: "<name> <source>",
	Action:    Run,
	Flags:     flags.WithGlobalFlags(flags.WithFetchFlags(nil)),
}

func Run(ctx *cli.Context) error {
	r, _, err := setup.SetContext(ctx)
	if err != nil {
		return err
	}
	if err := cmdutil.ExactArgs(ctx, "name", "source"); err != nil {
		return err
	}

	id, err := config.VCS()
	if err != nil {
		return err
	}
	root, err := config.Root()
	if err != nil {
		return err
	}

	lib := library.Library{
		Name:     ctx.Args().Get(0),
		VCS:      id,
		URL:      ctx.Args().Get(1),
		Branch:   config.Branch(),
		Version:  config.Version(),
		Settings: config.Settings(),
	}
	if err := cmdutil.Get(r, root, lib); err != nil {
		return err
	}
	fmt.Printf("Fetched %s into %s\n", color.GreenString(lib.Name), library.Dir(root, lib.Name))
	return nil
}
