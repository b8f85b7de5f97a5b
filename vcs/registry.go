package vcs

import (
	"path/filepath"

	"github.com/fossas/vcsfetch/services"
)

// Registry maps IDs to VCS implementations. It is not safe for concurrent
// use; the process is expected to drive one operation at a time.
type Registry struct {
	svc     services.Services
	order   []ID
	entries map[ID]VCS
}

// NewRegistry returns an empty registry whose built-in clients will use svc.
// Call Initialize to populate it; Get and Detect also do so on first use.
func NewRegistry(svc services.Services) *Registry {
	return &Registry{
		svc:     svc,
		entries: make(map[ID]VCS),
	}
}

// Initialize registers the built-in clients for every ID that has no entry
// yet. It never replaces an existing entry, so it is safe to call repeatedly.
func (r *Registry) Initialize() {
	for _, id := range IDs {
		if _, ok := r.entries[id]; ok {
			continue
		}
		switch id {
		case Git:
			r.set(id, NewGitClient(r.svc))
		case Mercurial:
			r.set(id, NewMercurialClient(r.svc))
		}
	}
}

// Register adds impl under id unless an entry exists and overwrite is false.
// It reports whether impl was stored.
func (r *Registry) Register(id ID, impl VCS, overwrite bool) bool {
	if impl == nil {
		return false
	}
	if _, ok := r.entries[id]; ok && !overwrite {
		return false
	}
	r.set(id, impl)
	return true
}

func (r *Registry) set(id ID, impl VCS) {
	if _, ok := r.entries[id]; !ok {
		r.order = append(r.order, id)
	}
	r.entries[id] = impl
}

// Get returns the implementation registered under id, or nil.
func (r *Registry) Get(id ID) VCS {
	r.Initialize()
	return r.entries[id]
}

// Detect returns the implementation whose checkout subdirectory exists in
// dir, checking IDs in registration order. It returns nil if none exists.
func (r *Registry) Detect(dir string) VCS {
	r.Initialize()
	for _, id := range r.order {
		if r.svc.FileSystem.HasFolder(filepath.Join(dir, string(id))) {
			return r.entries[id]
		}
	}
	return nil
}

// List returns the registered IDs in registration order.
func (r *Registry) List() []ID {
	r.Initialize()
	return append([]ID(nil), r.order...)
}
