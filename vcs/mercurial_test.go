package vcs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossas/vcsfetch/exec"
)

func TestMercurialCloneWithoutRefs(t *testing.T) {
	m := newMocks()
	h := NewMercurialClient(m.Services())

	assert.NoError(t, h.Clone("dest", "https://hg.example.com/foo", "", "", Settings{}))
	assert.Equal(t, []string{"clone https://hg.example.com/foo dest"}, m.Exec.Commands())
	assert.Empty(t, m.WD.entered)
}

func TestMercurialCloneBranchAndRevision(t *testing.T) {
	m := newMocks()
	h := NewMercurialClient(m.Services())

	assert.NoError(t, h.Clone("dest", "src", "stable", "1.4", Settings{Flat: true}))
	assert.Equal(t, []string{"clone src dest --branch stable --rev 1.4"}, m.Exec.Commands())
	assert.Empty(t, m.WD.entered)
}

func TestMercurialCloneFailure(t *testing.T) {
	m := newMocks()
	m.Exec.Script("clone src dest", exec.Result{Code: 255, Out: "abort: repository src not found!"})
	h := NewMercurialClient(m.Services())

	err := h.Clone("dest", "src", "", "", Settings{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCloneFailed))

	var vcsErr *Error
	require.True(t, errors.As(err, &vcsErr))
	assert.Equal(t, "Mercurial", vcsErr.VCS.Name)
	assert.Equal(t, "src", vcsErr.Repo)
	assert.Empty(t, vcsErr.Diagnostic)
}

func TestMercurialUpdateNewChangesets(t *testing.T) {
	m := newMocks()
	m.Exec.Script("summary", exec.Result{Out: "parent: 4:abc tip\nbranch: default\nadded 3 changesets\n\n"})
	h := NewMercurialClient(m.Services())

	assert.True(t, h.Update("foo", Settings{}))
	assert.Equal(t, []string{
		"pull",
		"summary",
		"diff -U 2 --git --subrepos",
		"status",
		"update",
	}, m.Exec.Commands())
	assert.Equal(t, []string{"added 3 changesets\n"}, m.Logger.printed)
	assert.Empty(t, m.Prompt.asked)
}

func TestMercurialUpdateNothingNew(t *testing.T) {
	m := newMocks()
	m.Exec.Script("summary", exec.Result{Out: "branch: default\ncommit: (clean)\nupdate: (current)\n"})
	h := NewMercurialClient(m.Services())

	assert.False(t, h.Update("foo", Settings{}))
	assert.Equal(t, 0, m.Exec.Count("update"))
	assert.Empty(t, m.Logger.printed)
	assert.Empty(t, m.Prompt.asked)
}

func TestMercurialUpdateLocalChangesAccepted(t *testing.T) {
	m := newMocks()
	m.Exec.Script("summary", exec.Result{Out: "update: (current)\n"})
	m.Exec.Script("status", exec.Result{Out: "M haxelib.json\n"})
	m.Prompt.Answer = true
	h := NewMercurialClient(m.Services())

	// The prompt is shown even though no changesets were pulled.
	assert.False(t, h.Update("foo", Settings{}))
	assert.Equal(t, []string{"Reset changes to foo Mercurial repo so we can update to latest version?"}, m.Prompt.asked)
	assert.Equal(t, 1, m.Exec.Count("update --clean"))
	assert.Equal(t, 0, m.Exec.Count("update"))
}

func TestMercurialUpdateLocalChangesDeclined(t *testing.T) {
	m := newMocks()
	m.Exec.Script("summary", exec.Result{Out: "update: 2 new changesets (update)\n"})
	m.Exec.Script("diff -U 2 --git --subrepos", exec.Result{Out: "diff --git a/x b/x\n"})
	m.Prompt.Answer = false
	h := NewMercurialClient(m.Services())

	assert.False(t, h.Update("foo", Settings{}))
	assert.Equal(t, 0, m.Exec.Count("update"))
	assert.Equal(t, 0, m.Exec.Count("update --clean"))
	assert.Equal(t, []string{
		"update: 2 new changesets (update)\n",
		"diff --git a/x b/x\n\n",
		"Mercurial repo left untouched\n",
	}, m.Logger.printed)
}

func TestMercurialUpdateFailingStatusForcesPrompt(t *testing.T) {
	m := newMocks()
	m.Exec.Script("summary", exec.Result{Out: "update: 1 new changesets (update)\n"})
	m.Exec.Script("diff -U 2 --git --subrepos", exec.Result{Code: 255})
	m.Prompt.Answer = true
	h := NewMercurialClient(m.Services())

	assert.True(t, h.Update("foo", Settings{}))
	assert.Len(t, m.Prompt.asked, 1)
	assert.Equal(t, 1, m.Exec.Count("update --clean"))
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "c", lastLine("a\nb\nc\n"))
	assert.Equal(t, "b", lastLine("a\nb\n\n  \n"))
	assert.Equal(t, "", lastLine(""))
}

func TestMercurialStatus(t *testing.T) {
	m := newMocks()
	m.Exec.Script("branch", exec.Result{Out: "default\n"})
	m.Exec.Script("log -l 1 -r . --template {node}", exec.Result{Out: "8fb2a764a974c571ab1d7d30482ad99d1342d375"})
	m.Exec.Script("paths default", exec.Result{Out: "https://hg.example.com/sample-project\n"})
	h := NewMercurialClient(m.Services())

	status, err := h.Status("/libs/sample/hg")
	assert.NoError(t, err)
	assert.Equal(t, "default", status.Head.Branch)
	assert.Equal(t, "8fb2a764a974c571ab1d7d30482ad99d1342d375", status.Head.RevisionID)
	assert.Equal(t, "https://hg.example.com/sample-project", status.Project)
	assert.Equal(t, "/libs/sample/hg", m.Exec.calls[0].Dir)
	assert.Equal(t, "/work", m.WD.cwd)
}

func TestMercurialStatusWithoutRemote(t *testing.T) {
	m := newMocks()
	m.Exec.Script("paths default", exec.Result{Code: 1, Out: "not found!"})
	h := NewMercurialClient(m.Services())

	status, err := h.Status("/libs/sample/hg")
	assert.NoError(t, err)
	assert.Equal(t, "hg", status.Project)
}
