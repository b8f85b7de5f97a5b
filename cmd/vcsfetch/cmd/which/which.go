package which

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/cmdutil"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/flags"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/setup"
	"github.com/fossas/vcsfetch/services"
	"github.com/fossas/vcsfetch/vcs"
)

var Cmd = cli.Command{
	Name:      "which",
	Usage:     "Report which version control clients are available",
	ArgsUsage: "[git|hg...]",
	Action:    Run,
	Flags:     flags.WithGlobalFlags(nil),
}

// Report is the availability of one client.
type Report struct {
	ID         vcs.ID
	Name       string
	Executable string
	Available  bool
	Version    string
}

func Run(ctx *cli.Context) error {
	r, svc, err := setup.SetContext(ctx)
	if err != nil {
		return err
	}

	ids := r.List()
	if ctx.NArg() > 0 {
		ids = nil
		for _, arg := range ctx.Args() {
			id, err := vcs.ParseID(arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
	}

	for _, id := range ids {
		v, err := cmdutil.Lookup(r, id)
		if err != nil {
			return err
		}
		fmt.Println(Format(Inspect(svc, v)))
	}
	return nil
}

// Inspect checks whether the client of v is available and asks it for its
// version.
func Inspect(svc services.Services, v vcs.VCS) Report {
	d := v.Descriptor()
	report := Report{
		ID:         v.ID(),
		Name:       d.Name,
		Executable: d.Executable,
		Available:  v.Available(),
	}
	if !report.Available {
		return report
	}
	_, out, err := svc.Exec.Which([]string{"--version"}, d.Executable)
	if err == nil {
		report.Version = firstLine(out)
	}
	return report
}

func Format(r Report) string {
	if !r.Available {
		return fmt.Sprintf("%s (%s): %s", r.Name, r.Executable, color.RedString("not found"))
	}
	if r.Version == "" {
		return fmt.Sprintf("%s (%s): %s", r.Name, r.Executable, color.GreenString("available"))
	}
	return fmt.Sprintf("%s (%s): %s, %s", r.Name, r.Executable, color.GreenString("available"), r.Version)
}

func firstLine(s string) string {
	return strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
}
