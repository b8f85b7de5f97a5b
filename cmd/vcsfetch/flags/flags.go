// Package flags defines the command line flags shared by vcsfetch commands.
package flags

import (
	"fmt"
	"reflect"

	"github.com/urfave/cli"
)

func abbr(fullname string) string {
	return fmt.Sprintf("%s, %s", string(fullname[0]), fullname)
}

func WithGlobalFlags(f []cli.Flag) []cli.Flag {
	return append(f, Global...)
}

var (
	Global  = []cli.Flag{ConfigF, RootF, YesF, NoAnsiF, DebugF}
	Config  = "config"
	ConfigF = cli.StringFlag{Name: abbr(Config), Usage: "path to config file (default: nearest '.vcsfetch.{yml,yaml,toml}')"}
	Root    = "root"
	RootF   = cli.StringFlag{Name: abbr(Root), Usage: "directory holding library checkouts (default: '~/.vcsfetch/lib')", EnvVar: "VCSFETCH_ROOT"}
	Yes     = "yes"
	YesF    = cli.BoolFlag{Name: abbr(Yes), Usage: "answer yes to every confirmation prompt"}
	NoAnsi  = "no-ansi"
	NoAnsiF = cli.BoolFlag{Name: NoAnsi, Usage: "do not use interactive mode (ANSI codes)"}
	Debug   = "debug"
	DebugF  = cli.BoolFlag{Name: Debug, Usage: "print debug information to stderr"}
)

func WithFetchFlags(f []cli.Flag) []cli.Flag {
	return append(f, Fetch...)
}

var (
	Fetch    = []cli.Flag{VCSF, BranchF, VersionF, FlatF}
	VCS      = "vcs"
	VCSF     = cli.StringFlag{Name: VCS, Value: "git", Usage: "version control system of the repository ('git' or 'hg')"}
	Branch   = "branch"
	BranchF  = cli.StringFlag{Name: abbr(Branch), Usage: "branch to check out after cloning"}
	Version  = "version"
	VersionF = cli.StringFlag{Name: Version, Usage: "tag (Git) or revision (Mercurial) to check out after cloning"}
	Flat     = "flat"
	FlatF    = cli.BoolFlag{Name: Flat, Usage: "do not fetch nested sub-repositories"}
)

// Combine merges flag lists, dropping exact duplicates. It panics if two
// different flags share a name, since that is a programming error.
func Combine(lists ...[]cli.Flag) []cli.Flag {
	var combined []cli.Flag
	seen := make(map[string]cli.Flag)
	for _, list := range lists {
		for _, f := range list {
			if prev, ok := seen[f.GetName()]; ok {
				if !reflect.DeepEqual(prev, f) {
					panic(fmt.Sprintf("conflicting definitions for flag %q", f.GetName()))
				}
				continue
			}
			seen[f.GetName()] = f
			combined = append(combined, f)
		}
	}
	return combined
}
