// Package fixtures builds throwaway upstream repositories for tests.
package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	git "gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/plumbing"
	"gopkg.in/src-d/go-git.v4/plumbing/object"
)

var signature = object.Signature{
	Name:  "vcsfetch",
	Email: "vcsfetch@example.com",
}

// A Commit writes Files (path to content) into the worktree and commits them.
// Tag, if set, creates a lightweight tag at the new commit.
type Commit struct {
	Message string
	Files   map[string]string
	Tag     string
}

// Upstream is a Git repository that tests clone from.
type Upstream struct {
	Dir  string
	repo *git.Repository
}

// NewUpstream initializes a repository in dir and applies commits in order on
// its default branch.
func NewUpstream(dir string, commits ...Commit) (*Upstream, error) {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return nil, err
	}
	u := &Upstream{Dir: dir, repo: repo}
	for _, c := range commits {
		if _, err := u.Commit(c); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Commit applies c and returns the new commit hash.
func (u *Upstream) Commit(c Commit) (string, error) {
	tree, err := u.repo.Worktree()
	if err != nil {
		return "", err
	}
	for name, content := range c.Files {
		path := filepath.Join(u.Dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", err
		}
		if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
			return "", err
		}
		if _, err := tree.Add(name); err != nil {
			return "", err
		}
	}

	sig := signature
	sig.When = time.Now()
	hash, err := tree.Commit(c.Message, &git.CommitOptions{Author: &sig})
	if err != nil {
		return "", err
	}
	if c.Tag != "" {
		if err := u.setRef("refs/tags/"+c.Tag, hash); err != nil {
			return "", err
		}
	}
	return hash.String(), nil
}

// Branch points a new branch at the current HEAD commit.
func (u *Upstream) Branch(name string) error {
	head, err := u.repo.Head()
	if err != nil {
		return err
	}
	return u.setRef("refs/heads/"+name, head.Hash())
}

func (u *Upstream) setRef(name string, hash plumbing.Hash) error {
	return u.repo.Storer.SetReference(plumbing.NewHashReference(plumbing.ReferenceName(name), hash))
}
