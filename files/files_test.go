package files_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossas/vcsfetch/files"
)

func TestNonExistentParentIsNotErr(t *testing.T) {
	ok, err := files.Exists(filepath.Join("testdata", "parent", "does", "not", "exist", "file"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestExistsDistinguishesFilesAndFolders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "hg"), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "git"), []byte("not a checkout"), 0644))

	ok, err := files.ExistsFolder(dir, "hg")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = files.ExistsFolder(dir, "git")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = files.Exists(dir, "git")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = files.Exists(dir, "hg")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestWalkUpStopsAtFirstMatch(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "a", ".vcsfetch.yml"), nil, 0644))

	dir, err := files.WalkUp(nested, func(d string) error {
		ok, err := files.Exists(d, ".vcsfetch.yml")
		if err != nil {
			return err
		}
		if ok {
			return files.ErrStopWalk
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a"), dir)
}

func TestReadYAML(t *testing.T) {
	name := filepath.Join(t.TempDir(), "lib.yml")
	require.NoError(t, ioutil.WriteFile(name, []byte("name: foo\nvcs: git\n"), 0644))

	var v struct {
		Name string `yaml:"name"`
		VCS  string `yaml:"vcs"`
	}
	assert.NoError(t, files.ReadYAML(&v, name))
	assert.Equal(t, "foo", v.Name)
	assert.Equal(t, "git", v.VCS)
}

func TestRmRemovesTree(t *testing.T) {
	dir, err := ioutil.TempDir("", "vcsfetch-rm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib", "git", ".git"), 0755))

	assert.NoError(t, files.Rm(dir, "lib"))
	ok, err := files.ExistsFolder(dir, "lib")
	assert.NoError(t, err)
	assert.False(t, ok)
}
