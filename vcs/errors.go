package vcs

import (
	"fmt"
	"strings"
)

// ErrorKind distinguishes the ways a VCS operation can fail.
type ErrorKind int

const (
	_ ErrorKind = iota
	Unavailable
	CloneFailed
	BranchCheckoutFailed
	VersionCheckoutFailed
)

func (k ErrorKind) String() string {
	switch k {
	case Unavailable:
		return "unavailable"
	case CloneFailed:
		return "clone failed"
	case BranchCheckoutFailed:
		return "branch checkout failed"
	case VersionCheckoutFailed:
		return "version checkout failed"
	default:
		return "unknown"
	}
}

// Error is a failed VCS operation. Which of Repo, Branch and Version is set
// depends on Kind. Diagnostic is what the client printed, when captured.
type Error struct {
	Kind ErrorKind
	VCS  Descriptor

	Repo    string
	Branch  string
	Version string

	Diagnostic string
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrUnavailable           = &Error{Kind: Unavailable}
	ErrCloneFailed           = &Error{Kind: CloneFailed}
	ErrBranchCheckoutFailed  = &Error{Kind: BranchCheckoutFailed}
	ErrVersionCheckoutFailed = &Error{Kind: VersionCheckoutFailed}
)

func NewUnavailableError(vcs Descriptor) *Error {
	return &Error{Kind: Unavailable, VCS: vcs}
}

func newCloneError(vcs Descriptor, repo, diagnostic string) *Error {
	return &Error{Kind: CloneFailed, VCS: vcs, Repo: repo, Diagnostic: strings.TrimSpace(diagnostic)}
}

func newBranchError(vcs Descriptor, branch, diagnostic string) *Error {
	return &Error{Kind: BranchCheckoutFailed, VCS: vcs, Branch: branch, Diagnostic: strings.TrimSpace(diagnostic)}
}

func newVersionError(vcs Descriptor, version, diagnostic string) *Error {
	return &Error{Kind: VersionCheckoutFailed, VCS: vcs, Version: version, Diagnostic: strings.TrimSpace(diagnostic)}
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case Unavailable:
		msg = fmt.Sprintf("%s is not available (could not run %q)", e.VCS.Name, e.VCS.Executable)
	case CloneFailed:
		msg = fmt.Sprintf("could not clone %s repository %s", e.VCS.Name, e.Repo)
	case BranchCheckoutFailed:
		msg = fmt.Sprintf("could not check out %s branch %q", e.VCS.Name, e.Branch)
	case VersionCheckoutFailed:
		msg = fmt.Sprintf("could not check out %s version %q", e.VCS.Name, e.Version)
	default:
		msg = fmt.Sprintf("%s operation failed", e.VCS.Name)
	}
	if e.Diagnostic != "" {
		msg += ": " + e.Diagnostic
	}
	return msg
}

// Is matches errors of the same Kind. A target without a VCS name matches
// every VCS.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.VCS.Name == "" || t.VCS == e.VCS
}
