// Package errors renders application errors for users, with troubleshooting
// advice attached.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/fossas/vcsfetch/vcs"
)

// Type classifies who is likely responsible for an error.
type Type int

const (
	Unknown Type = iota
	User         // Fixable by the user: bad input, missing tools.
	Exec         // An external client failed.
)

// Error is an application-level error with user-facing advice.
type Error struct {
	Cause           error
	Type            Type
	Message         string
	Troubleshooting string
	Link            string
}

// Error implements error for Error.
func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		if msg == "" {
			msg = e.Cause.Error()
		} else {
			msg += ": " + e.Cause.Error()
		}
	}
	return msg
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Report renders the error with its troubleshooting section and, for errors
// that are not the user's to fix, the bug reporting footer.
func (e *Error) Report() string {
	var b strings.Builder
	b.WriteString(color.RedString("ERROR: ") + wordwrap.WrapString(e.Error(), width))
	if e.Troubleshooting != "" {
		b.WriteString("\n\n" + color.HiYellowString("TROUBLESHOOTING:") + "\n")
		b.WriteString(wordwrap.WrapString(e.Troubleshooting, width))
	}
	if e.Link != "" {
		b.WriteString("\n\n" + wordwrap.WrapString("See "+color.HiBlueString(e.Link)+" for more information.", width))
	}
	if e.Type != User {
		b.WriteString(ReportBugMessage)
	}
	return b.String()
}

// Wrap converts any error into an *Error. Errors that already are *Error are
// returned unchanged, and VCS errors receive advice for their kind.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var vcsErr *vcs.Error
	if errors.As(err, &vcsErr) {
		return FromVCS(vcsErr, err)
	}
	return &Error{Cause: err}
}

// FromVCS maps a VCS failure to user advice. cause is the error as it was
// returned, which may wrap e.
func FromVCS(e *vcs.Error, cause error) *Error {
	if cause == nil {
		cause = e
	}
	switch e.Kind {
	case vcs.Unavailable:
		return &Error{
			Cause:           cause,
			Type:            User,
			Troubleshooting: InstallMessage(e.VCS),
		}
	case vcs.CloneFailed:
		return &Error{
			Cause: cause,
			Type:  Exec,
			Troubleshooting: fmt.Sprintf("Check that %s is a %s repository you can access. Try running `%s clone %s` yourself to see the full output.",
				e.Repo, e.VCS.Name, e.VCS.Executable, e.Repo),
		}
	case vcs.BranchCheckoutFailed:
		return &Error{
			Cause:           cause,
			Type:            User,
			Troubleshooting: fmt.Sprintf("The repository was cloned, but it has no branch named %q. Check the branch name in your configuration.", e.Branch),
		}
	case vcs.VersionCheckoutFailed:
		return &Error{
			Cause:           cause,
			Type:            User,
			Troubleshooting: fmt.Sprintf("The repository was cloned, but it has no tag named %q. Check the version in your configuration.", e.Version),
		}
	}
	return &Error{Cause: cause}
}
