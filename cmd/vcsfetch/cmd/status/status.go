package status

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
	"github.com/fossas/vcsfetch/library"
	"github.com/fossas/vcsfetch/vcs"
)

var Cmd = cli.Command{
	Name:      "status",
	Usage:     "Show the checked out revision of fetched libraries",
	ArgsUsage: "[name|pattern...]",
	Action:    Run,
	Flags:     flags.WithGlobalFlags(nil),
}

func Run(ctx *cli.Context) error {
	r, _, err := setup.SetContext(ctx)
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

	for _, name := range names {
		line, err := Describe(r, root, name)
		if err != nil {
			log.WithError(err).WithField("library", name).Warn("could not read library status")
			continue
		}
		fmt.Println(line)
	}
	return nil
}

// Describe summarizes the checkout of the library name under root.
func Describe(r *vcs.Registry, root, name string) (string, error) {
	v := r.Detect(library.Dir(root, name))
	if v == nil {
		return "", &errors.Error{Type: errors.User, Message: fmt.Sprintf("%s has no checkout in %s", name, root)}
	}
	inspector, ok := v.(vcs.Inspector)
	if !ok {
		return fmt.Sprintf("%s (%s)", name, v.Descriptor().Name), nil
	}

	status, err := inspector.Status(library.CheckoutDir(root, name, v))
	if err != nil {
		return "", err
	}
	line := fmt.Sprintf("%s (%s)", color.GreenString(name), v.Descriptor().Name)
	if status.Head.Branch != "" {
		line += " " + status.Head.Branch
	}
	if status.Head.RevisionID != "" {
		line += " @ " + shortRevision(status.Head.RevisionID)
	}
	if status.Project != "" {
		line += " from " + status.Project
	}
	return line, nil
}

func shortRevision(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
