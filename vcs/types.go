package vcs

import (
	"fmt"
	"strings"
)

// ID identifies a version control system family. It is also the name of the
// subdirectory that holds a checkout inside a library directory.
type ID string

const (
	Git       ID = "git"
	Mercurial ID = "hg"
)

// IDs has the built-in systems in registration order.
var IDs = [2]ID{
	Git,
	Mercurial,
}

// ParseID converts a user-supplied name into an ID.
func ParseID(name string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "git":
		return Git, nil
	case "hg", "mercurial":
		return Mercurial, nil
	default:
		return "", fmt.Errorf("unknown VCS %q (expected one of: git, hg)", name)
	}
}

func (id ID) String() string {
	return string(id)
}

// A Descriptor describes one VCS implementation. It is set at construction
// and never changes.
type Descriptor struct {
	Name       string // Display name, e.g. "Git".
	Directory  string // Subdirectory of a library directory holding the checkout.
	Executable string // Client executable to invoke.
}

// Settings tune a single clone or update.
type Settings struct {
	// Flat skips fetching nested sub-repositories.
	Flat bool `mapstructure:"flat"`

	// Quiet and Debug are accepted for every operation but do not change
	// behaviour yet; all client output is traced at debug level regardless.
	Quiet bool `mapstructure:"quiet"`
	Debug bool `mapstructure:"debug"`
}

// Revision is the checked out position of a checkout.
type Revision struct {
	Branch     string
	RevisionID string
}

// Status describes an existing checkout.
type Status struct {
	Head    Revision
	Project string // Remote the checkout was cloned from, if known.
}
