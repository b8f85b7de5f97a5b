package install

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmdutil"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/flags"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/setup"
	"github.com/fossas/vcsfetch/config"
	"github.com/fossas/vcsfetch/errors"
	"github.com/fossas/vcsfetch/library"
)

var Cmd = cli.Command{
	Name:   "install",
	Usage:  "Fetch or update every library in the configuration file",
	Action: Run,
	Flags:  flags.WithGlobalFlags(nil),
}

func Run(ctx *cli.Context) error {
	r, svc, err := setup.SetContext(ctx)
	if err != nil {
		return err
	}
	if config.Filepath() == "" {
		return &errors.Error{
			Type:            errors.User,
			Message:         "no configuration file found",
			Troubleshooting: "Create a .vcsfetch.yml listing your libraries, or pass one with --config.",
		}
	}
	root, err := config.Root()
	if err != nil {
		return err
	}

	libs := config.Libraries()
	failed := 0
	for _, lib := range libs {
		existing := r.Detect(library.Dir(root, lib.Name))
		if existing == nil {
			err = cmdutil.Get(r, root, lib)
			if err == nil {
				fmt.Printf("%s: %s\n", lib.Name, color.GreenString("fetched"))
			}
		} else {
			if existing.ID() != lib.VCS {
				log.WithField("library", lib.Name).Warnf("configured for %s but checked out with %s", lib.VCS, existing.ID())
			}
			var changed bool
			_, changed, err = cmdutil.Update(r, svc.WorkDir, root, lib.Name, lib.Settings)
			if err == nil && changed {
				fmt.Printf("%s: %s\n", lib.Name, color.GreenString("updated"))
			} else if err == nil {
				fmt.Printf("%s: up to date\n", lib.Name)
			}
		}
		if err != nil {
			failed++
			fmt.Fprintln(os.Stderr, errors.Wrap(err).Report())
		}
	}

	if failed > 0 {
		return &errors.Error{
			Type:    errors.User,
			Message: fmt.Sprintf("%d of %d libraries could not be installed", failed, len(libs)),
		}
	}
	return nil
}
