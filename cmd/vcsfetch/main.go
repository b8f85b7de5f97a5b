package main

import (
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/app"
	"github.com/fossas/vcsfetch/cmd/vcsfetch/display"
	"github.com/fossas/vcsfetch/errors"
)

func main() {
	err := app.New().Run(os.Args)
	if err != nil {
		display.ClearProgress()
		e := errors.Wrap(err)
		log.WithError(e).Debug("command failed")
		fmt.Fprintln(os.Stderr, e.Report())
		if f := display.File(); f != "" {
			fmt.Fprintf(os.Stderr, "\nA debug log was written to %s\n", f)
		}
		os.Exit(1)
	}
}
