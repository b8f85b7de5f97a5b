package cmdutil

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/errors"
)

// ExactArgs returns a usage error unless the command received exactly the
// named positional arguments.
func ExactArgs(ctx *cli.Context, names ...string) error {
	if ctx.NArg() == len(names) {
		return nil
	}
	usage := ctx.Command.Name
	for _, n := range names {
		usage += " <" + n + ">"
	}
	return &errors.Error{
		Type:            errors.User,
		Message:         fmt.Sprintf("expected %d arguments, got %d", len(names), ctx.NArg()),
		Troubleshooting: fmt.Sprintf("Usage: vcsfetch %s", usage),
	}
}
