package vcs

import (
	"regexp"

	"github.com/pkg/errors"
	git "gopkg.in/src-d/go-git.v4"

	"github.com/fossas/vcsfetch/services"
)

// GitClient implements VCS for Git.
type GitClient struct {
	client
}

// NewGitClient constructs the Git client. $GIT_BINARY overrides the
// executable.
func NewGitClient(svc services.Services) *GitClient {
	c := newClient(Git, Descriptor{
		Name:       "Git",
		Directory:  string(Git),
		Executable: "git",
	}, svc, svc.Env.Getenv("GIT_BINARY"))
	// A bare `git` exits 1 even when installed.
	c.probeArgs = []string{"help"}
	return &GitClient{client: c}
}

// Clone implements VCS. A requested branch is checked out first, then a
// requested version as the tag `tags/<version>`.
func (g *GitClient) Clone(dest, source, branch, version string, settings Settings) error {
	args := []string{"clone", source, dest}
	if !settings.Flat {
		args = append(args, "--recursive")
	}
	res := g.run(args...)
	if !res.OK() {
		return newCloneError(g.desc, source, res.Out)
	}
	if branch == "" && version == "" {
		return nil
	}

	err := services.Within(g.svc.WorkDir, dest, func() error {
		if branch != "" {
			res := g.run("checkout", branch)
			if !res.OK() {
				return newBranchError(g.desc, branch, res.Out)
			}
		}
		if version != "" {
			res := g.run("checkout", "tags/"+version)
			if !res.OK() {
				return newVersionError(g.desc, version, res.Out)
			}
		}
		return nil
	})
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); ok {
		return err
	}
	// The working directory could not be entered or restored.
	if branch != "" {
		return newBranchError(g.desc, branch, err.Error())
	}
	return newVersionError(g.desc, version, err.Error())
}

// Update implements VCS. Local modifications must be discarded before
// pulling, because a pull also moves the working tree.
func (g *GitClient) Update(libName string, settings Settings) bool {
	if g.dirty() {
		if !g.svc.Prompt.Ask("Reset changes to " + libName + " " + g.desc.Name + " repo so we can pull latest version?") {
			g.svc.Logger.Printf("%s repo left untouched\n", g.desc.Name)
			return false
		}
		g.run("reset", "--hard")
	}

	if res := g.run("pull"); !res.OK() {
		// A checkout pinned to a tag or revision has a detached HEAD and
		// cannot pull. Go back to the branch it came from and try again.
		g.svc.Logger.Debugf("pull failed, recovering branch: %s", res.Out)
		if branch, ok := parentBranch(g.run("show-branch").Out); ok {
			g.run("checkout", branch, "--force")
		} else {
			g.svc.Logger.Warningf("could not determine the branch of %s", libName)
		}
		g.run("pull")
	}
	return true
}

func (g *GitClient) dirty() bool {
	return !g.run("diff", "--exit-code").OK() || !g.run("diff", "--cached", "--exit-code").OK()
}

var showBranchName = regexp.MustCompile(`\[([^\]]*)\]`)

// parentBranch extracts the first bracketed branch name from `git show-branch`.
func parentBranch(showBranch string) (string, bool) {
	m := showBranchName.FindStringSubmatch(showBranch)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// Status implements Inspector by reading the repository metadata directly.
func (g *GitClient) Status(dir string) (Status, error) {
	r, err := git.PlainOpen(dir)
	if err != nil {
		return Status{}, errors.Wrapf(err, "could not open Git repository at %s", dir)
	}
	ref, err := r.Head()
	if err != nil {
		return Status{}, errors.Wrap(err, "could not read HEAD")
	}

	status := Status{
		Head: Revision{
			RevisionID: ref.Hash().String(),
		},
	}
	if ref.Name().IsBranch() {
		status.Head.Branch = ref.Name().Short()
	}
	origin, err := r.Remote("origin")
	if err == nil && origin != nil && len(origin.Config().URLs) > 0 {
		status.Project = origin.Config().URLs[0]
	}
	return status, nil
}
