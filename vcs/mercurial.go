package vcs

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/fossas/vcsfetch/services"
)

// MercurialClient implements VCS for Mercurial.
type MercurialClient struct {
	client
}

// NewMercurialClient constructs the Mercurial client. $HG_BINARY overrides
// the executable.
func NewMercurialClient(svc services.Services) *MercurialClient {
	c := newClient(Mercurial, Descriptor{
		Name:       "Mercurial",
		Directory:  string(Mercurial),
		Executable: "hg",
	}, svc, svc.Env.Getenv("HG_BINARY"))
	return &MercurialClient{client: c}
}

// Clone implements VCS. Branch and revision are passed to `hg clone`
// directly, so no checkout follows.
func (m *MercurialClient) Clone(dest, source, branch, version string, settings Settings) error {
	args := []string{"clone", source, dest}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	if version != "" {
		args = append(args, "--rev", version)
	}
	res := m.run(args...)
	if !res.OK() {
		// TODO: pass res.Out as the diagnostic, like GitClient.Clone does.
		m.svc.Logger.Debugf("hg clone failed: %s", res.Out)
		return newCloneError(m.desc, source, "")
	}
	return nil
}

// Update implements VCS. A Mercurial pull only adds changesets to history, so
// it always runs first; local modifications only block the final update of
// the working tree.
func (m *MercurialClient) Update(libName string, settings Settings) bool {
	m.run("pull")

	// The summary is localized, so the only signal taken from it is whether
	// its last line mentions a number (e.g. "update: 3 new changesets").
	summary := lastLine(m.run("summary").Out)
	changed := hasDigit.MatchString(summary)
	if changed {
		m.svc.Logger.Printf("%s\n", summary)
	}

	diff := m.run("diff", "-U", "2", "--git", "--subrepos")
	status := m.run("status")
	if !diff.OK() || !status.OK() || diff.Out != "" || status.Out != "" {
		m.svc.Logger.Printf("%s\n", diff.Out)
		if m.svc.Prompt.Ask("Reset changes to " + libName + " " + m.desc.Name + " repo so we can update to latest version?") {
			m.run("update", "--clean")
		} else {
			changed = false
			m.svc.Logger.Printf("%s repo left untouched\n", m.desc.Name)
		}
	} else if changed {
		m.run("update")
	}
	return changed
}

var hasDigit = regexp.MustCompile(`\d`)

func lastLine(text string) string {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// Status implements Inspector.
func (m *MercurialClient) Status(dir string) (Status, error) {
	var status Status
	err := services.Within(m.svc.WorkDir, dir, func() error {
		branch := m.run("branch")
		if !branch.OK() {
			return errors.Errorf("could not run `%s branch`: %s", m.desc.Executable, strings.TrimSpace(branch.Out))
		}
		status.Head.Branch = strings.TrimSpace(branch.Out)

		rev := m.run("log", "-l", "1", "-r", ".", "--template", "{node}")
		if !rev.OK() {
			return errors.Errorf("could not get latest revision ID: %s", strings.TrimSpace(rev.Out))
		}
		status.Head.RevisionID = strings.TrimSpace(rev.Out)

		if paths := m.run("paths", "default"); paths.OK() {
			status.Project = strings.TrimSpace(paths.Out)
		}
		return nil
	})
	if err != nil {
		return Status{}, err
	}
	if status.Project == "" {
		abs, err := filepath.Abs(dir)
		if err == nil {
			status.Project = filepath.Base(abs)
		}
	}
	return status, nil
}
