package exec

import (
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// ErrNoCandidate is returned when none of the candidate commands resolve.
var ErrNoCandidate = errors.New("could not resolve command")

// Which picks a command out of a list of candidates.
func Which(arg string, cmds ...string) (cmd string, output string, err error) {
	return WhichArgs([]string{arg}, cmds...)
}

// WhichArgs is `Which` but passes multiple arguments to each candidate.
func WhichArgs(argv []string, cmds ...string) (cmd string, output string, err error) {
	return WhichWithResolver(cmds, func(cmd string) (string, bool, error) {
		stdout, stderr, err := Run(Cmd{
			Name: cmd,
			Argv: argv,
		})
		if err != nil {
			return "", false, err
		}
		if stdout == "" {
			return strings.TrimSpace(stderr), true, nil
		}
		return strings.TrimSpace(stdout), true, nil
	})
}

// A WhichResolver takes a candidate command and returns whether to choose it.
type WhichResolver func(cmd string) (output string, ok bool, err error)

// WhichWithResolver is `Which` with a custom resolution strategy. Empty
// candidates are skipped so that unset environment overrides can be passed
// directly.
func WhichWithResolver(cmds []string, resolve WhichResolver) (string, string, error) {
	for _, cmd := range cmds {
		if cmd == "" {
			continue
		}
		version, ok, err := resolve(cmd)
		if ok {
			return cmd, version, nil
		}
		entry := log.WithFields(log.Fields{
			"cmd":     cmd,
			"version": version,
		})
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Debug("candidate did not resolve")
	}
	return "", "", ErrNoCandidate
}
