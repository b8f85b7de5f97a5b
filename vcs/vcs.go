// Package vcs drives installed version control clients to clone and update
// library checkouts. Two families are built in, Git and Mercurial, selected by
// ID through a Registry.
package vcs

import (
	"github.com/fossas/vcsfetch/exec"
	"github.com/fossas/vcsfetch/services"
)

// VCS is a version control client able to create and refresh checkouts.
type VCS interface {
	ID() ID
	Descriptor() Descriptor

	// Available reports whether the client executable responds. The first
	// call probes (and, on failure, searches for) the executable; later calls
	// return the cached answer.
	Available() bool

	// Recheck probes the executable again, replacing the cached answer.
	Recheck() bool

	// Clone creates a checkout of source at dest. Branch and version are
	// optional; the empty string means "not requested".
	Clone(dest, source, branch, version string, settings Settings) error

	// Update refreshes the checkout in the current working directory and
	// reports whether it changed. It never fails: dirty trees, failed pulls
	// and detached history are resolved with the user or logged.
	Update(libName string, settings Settings) bool
}

// An Inspector can describe an existing checkout.
type Inspector interface {
	Status(dir string) (Status, error)
}

// availability is the cached result of probing the executable.
type availability struct {
	checked   bool
	available bool
	searched  bool
}

// client holds what both families share: a descriptor, the services used to
// reach the outside world and the availability cache.
type client struct {
	id   ID
	desc Descriptor
	svc  services.Services

	// probeArgs are passed to the executable to check that it works.
	probeArgs []string
	// installDirs are conventional locations tried when the executable is
	// not on PATH.
	installDirs []string

	state availability
}

func newClient(id ID, desc Descriptor, svc services.Services, override string) client {
	if override != "" {
		desc.Executable = override
	}
	return client{
		id:          id,
		desc:        desc,
		svc:         svc,
		installDirs: installDirs(id),
	}
}

func (c *client) ID() ID {
	return c.id
}

func (c *client) Descriptor() Descriptor {
	return c.desc
}

func (c *client) run(args ...string) exec.Result {
	return c.svc.Exec.RunCWD(c.desc.Executable, args...)
}
