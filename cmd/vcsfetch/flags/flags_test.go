package flags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/flags"
)

func TestCombine(t *testing.T) {
	fooFlag := cli.BoolFlag{Name: "foo", Usage: "bar"}
	helloFlag := cli.BoolFlag{Name: "hello", Usage: "world"}

	combined := flags.Combine(
		[]cli.Flag{fooFlag},
		[]cli.Flag{fooFlag, helloFlag},
	)
	assert.Equal(t, combined, []cli.Flag{fooFlag, helloFlag})

	assert.Panics(t, func() {
		flags.Combine(
			[]cli.Flag{fooFlag},
			[]cli.Flag{cli.BoolFlag{Name: "foo", Usage: "baz"}},
		)
	})
}

func TestShortNames(t *testing.T) {
	assert.Equal(t, "c, config", flags.ConfigF.Name)
	assert.Equal(t, "b, branch", flags.BranchF.Name)
	assert.Equal(t, "version", flags.VersionF.Name)
}

func TestGlobalFlagsAreAppended(t *testing.T) {
	f := flags.WithGlobalFlags(flags.WithFetchFlags(nil))
	assert.Len(t, f, len(flags.Fetch)+len(flags.Global))
}
