// Package library describes libraries fetched from version control and where
// they live on disk.
package library

import (
	"path/filepath"

	"github.com/fossas/vcsfetch/vcs"
)

// A Library is a dependency fetched from a VCS repository.
type Library struct {
	Name string
	VCS  vcs.ID
	URL  string

	// Branch and Version pin the checkout. Both are optional.
	Branch  string
	Version string

	Settings vcs.Settings
}

// Dir is the directory that holds all checkouts of the library.
func Dir(root, name string) string {
	return filepath.Join(root, name)
}

// CheckoutDir is where the library's checkout made with v lives: a
// subdirectory of the library directory named after the VCS.
func CheckoutDir(root, name string, v vcs.VCS) string {
	return filepath.Join(Dir(root, name), v.Descriptor().Directory)
}
