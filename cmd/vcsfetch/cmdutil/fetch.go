// Package cmdutil implements the fetching steps shared by several commands.
package cmdutil

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/display"
	"github.com/fossas/vcsfetch/errors"
	"github.com/fossas/vcsfetch/files"
	"github.com/fossas/vcsfetch/library"
	"github.com/fossas/vcsfetch/services"
	"github.com/fossas/vcsfetch/vcs"
)

// Lookup returns the registered VCS for id.
func Lookup(r *vcs.Registry, id vcs.ID) (vcs.VCS, error) {
	v := r.Get(id)
	if v == nil {
		return nil, &errors.Error{
			Type:    errors.User,
			Message: fmt.Sprintf("no VCS is registered as %q", id),
		}
	}
	return v, nil
}

// Clone checks that the client of v is reachable, then clones source into
// dest.
func Clone(v vcs.VCS, dest, source, branch, version string, settings vcs.Settings) error {
	if !v.Available() {
		return vcs.NewUnavailableError(v.Descriptor())
	}

	log.WithField("source", source).WithField("dest", dest).Debug("cloning")
	display.InProgress(fmt.Sprintf("Cloning %s into %s...", source, dest))
	defer display.ClearProgress()
	return v.Clone(dest, source, branch, version, settings)
}

// Get clones lib into its checkout directory under root.
func Get(r *vcs.Registry, root string, lib library.Library) error {
	v, err := Lookup(r, lib.VCS)
	if err != nil {
		return err
	}

	dir := library.Dir(root, lib.Name)
	dest := library.CheckoutDir(root, lib.Name, v)
	if r.Detect(dir) != nil {
		return &errors.Error{
			Type:            errors.User,
			Message:         fmt.Sprintf("%s is already fetched", lib.Name),
			Troubleshooting: fmt.Sprintf("Run `vcsfetch update %s` to bring the existing checkout up to date, or remove %s to fetch it again.", lib.Name, dir),
		}
	}
	existed, err := files.ExistsFolder(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	err = Clone(v, dest, lib.URL, lib.Branch, lib.Version, lib.Settings)
	if err == nil {
		return nil
	}
	// A checkout without its pinned branch or version would pass for a good
	// one on the next install.
	cleanup := dest
	if !existed {
		cleanup = dir
	}
	if rmErr := files.Rm(cleanup); rmErr != nil {
		log.WithError(rmErr).WithField("dir", cleanup).Warn("could not remove failed checkout")
	}
	return err
}

// Update brings the checkout of the library name under root up to date. It
// reports which VCS holds the checkout and whether anything changed.
func Update(r *vcs.Registry, wd services.WorkDirService, root, name string, settings vcs.Settings) (vcs.VCS, bool, error) {
	v := r.Detect(library.Dir(root, name))
	if v == nil {
		return nil, false, &errors.Error{
			Type:            errors.User,
			Message:         fmt.Sprintf("%s has no checkout in %s", name, root),
			Troubleshooting: fmt.Sprintf("Fetch it first with `vcsfetch get %s <url>`.", name),
		}
	}
	if !v.Available() {
		return v, false, vcs.NewUnavailableError(v.Descriptor())
	}

	log.WithField("library", name).WithField("vcs", v.ID()).Debug("updating")
	var changed bool
	err := services.Within(wd, library.CheckoutDir(root, name, v), func() error {
		changed = v.Update(name, settings)
		return nil
	})
	return v, changed, err
}

// Installed lists the libraries under root that have a checkout, in name
// order. A missing root has no libraries.
func Installed(r *vcs.Registry, root string) ([]string, error) {
	entries, err := ioutil.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if r.Detect(filepath.Join(root, e.Name())) == nil {
			log.WithField("dir", e.Name()).Debug("skipping directory without a checkout")
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
