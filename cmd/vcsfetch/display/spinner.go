package display

import (
	"runtime"
	"time"

	"github.com/briandowns/spinner"
)

var (
	useSpinner bool
	s          = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
)

// SetInteractive turns colors and ANSI control characters on or off.
func SetInteractive(interactive bool) {
	// Disable Unicode and ANSI control characters on Windows.
	if runtime.GOOS == "windows" {
		interactive = false
	}
	useSpinner = interactive
}

// InProgress shows a progress spinner with a message.
func InProgress(message string) {
	if useSpinner {
		s.Suffix = " " + message
		s.Restart()
	}
}

// ClearProgress stops a progress spinner.
func ClearProgress() {
	s.Stop()
}
