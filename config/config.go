// Package config implements application-level configuration functionality.
//
// It works by loading configuration sources (CLI flags, the environment and
// configuration files) and providing functions which compute relevant
// configuration values from these sources.
//
// Each value has its own computation strategy, so it is always clear which
// source set a particular configuration value.
package config

import (
	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/flags"
)

var (
	ctx  *cli.Context
	file File = NoFile{}
)

// SetContext initializes application-level configuration.
func SetContext(c *cli.Context) error {
	// First, set the CLI flags.
	ctx = c

	// Second, try to load a configuration file.
	f, fname, err := ReadFile(StringFlag(flags.Config))
	if err != nil {
		return err
	}

	log.WithField("filename", fname).Debug("loaded configuration file")
	file = f
	filename = fname

	return nil
}
