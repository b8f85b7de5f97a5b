package update

import (
	"fmt"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmdutil"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/flags"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/setup"
	"github.com/fossas/vcsfetch/config"
	"github.com/fossas/vcsfetch/errors"
)

var Cmd = cli.Command{
	Name:      "update",
	Usage:     "Update fetched libraries to their latest state",
	ArgsUsage: "[name|pattern...]",
	Action:    Run,
	Flags:     flags.WithGlobalFlags([]cli.Flag{flags.FlatF}),
}

func Run(ctx *cli.Context) error {
	r, svc, err := setup.SetContext(ctx)
	if err != nil {
		return err
	}
	root, err := config.Root()
	if err != nil {
		return err
	}

	installed, err := cmdutil.Installed(r, root)
	if err != nil {
		return err
	}
	names := installed
	if ctx.NArg() > 0 {
		names, err = cmdutil.Select(installed, ctx.Args())
		if err != nil {
			return err
		}
	}
	if len(names) == 0 {
		fmt.Printf("No libraries in %s\n", root)
		return nil
	}

	failed := 0
	for _, name := range names {
		_, changed, err := cmdutil.Update(r, svc.WorkDir, root, name, config.Settings())
		if err != nil {
			failed++
			log.WithError(err).WithField("library", name).Error("could not update library")
			continue
		}
		if changed {
			fmt.Printf("%s: %s\n", name, color.GreenString("updated"))
		} else {
			fmt.Printf("%s: up to date\n", name)
		}
	}
	if failed > 0 {
		return &errors.Error{
			Type:    errors.User,
			Message: fmt.Sprintf("%d of %d libraries could not be updated", failed, len(names)),
		}
	}
	return nil
}
