package v1_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/fossas/vcsfetch/config/file.v1"
	"github.com/fossas/vcsfetch/library"
	"github.com/fossas/vcsfetch/vcs"
)

func read(t *testing.T, name string) []byte {
	data, err := ioutil.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestYAMLLibraries(t *testing.T) {
	file, err := v1.New(read(t, "libraries.yml"), v1.YAML)
	require.NoError(t, err)

	assert.Equal(t, "vendor/libs", file.Root())
	assert.Equal(t, []library.Library{
		{
			Name:     "format",
			VCS:      vcs.Git,
			URL:      "https://github.com/example/format.git",
			Branch:   "develop",
			Version:  "1.2.0",
			Settings: vcs.Settings{Flat: true},
		},
		{
			Name:    "tink",
			VCS:     vcs.Mercurial,
			URL:     "https://hg.example.org/tink",
			Version: "a1b2c3d4",
		},
	}, file.Libraries())
}

func TestTOMLLibraries(t *testing.T) {
	file, err := v1.New(read(t, "libraries.toml"), v1.TOML)
	require.NoError(t, err)

	assert.Equal(t, "vendor/libs", file.Root())
	libs := file.Libraries()
	require.Len(t, libs, 2)
	assert.Equal(t, vcs.Git, libs[0].VCS)
	assert.True(t, libs[0].Settings.Flat)
	assert.Equal(t, vcs.Mercurial, libs[1].VCS)
	assert.Equal(t, "", libs[1].Version)
}

func TestWrongVersion(t *testing.T) {
	for _, doc := range []string{
		"root: libs\n",
		"version: 2\n",
		"version: \"1\"\n",
	} {
		_, err := v1.New([]byte(doc), v1.YAML)
		assert.Equal(t, v1.ErrWrongVersion, err, doc)
	}
}

func TestInvalidLibraries(t *testing.T) {
	cases := map[string]string{
		"missing name":   "version: 1\nlibraries:\n  - url: https://example.com/a.git\n",
		"missing url":    "version: 1\nlibraries:\n  - name: a\n",
		"unknown vcs":    "version: 1\nlibraries:\n  - name: a\n    url: u\n    vcs: svn\n",
		"unknown option": "version: 1\nlibraries:\n  - name: a\n    url: u\n    options:\n      shallow: true\n",
		"duplicate":      "version: 1\nlibraries:\n  - name: a\n    url: u\n  - name: a\n    url: v\n",
	}
	for name, doc := range cases {
		_, err := v1.New([]byte(doc), v1.YAML)
		assert.Error(t, err, name)
	}
}

func TestDecodeSettings(t *testing.T) {
	s, err := v1.DecodeSettings(nil)
	assert.NoError(t, err)
	assert.Equal(t, vcs.Settings{}, s)

	s, err = v1.DecodeSettings(map[string]interface{}{"flat": "1", "quiet": true})
	assert.NoError(t, err)
	assert.Equal(t, vcs.Settings{Flat: true, Quiet: true}, s)
}

func TestNonSemanticVersionWarns(t *testing.T) {
	handler := memory.New()
	log.SetHandler(handler)

	_, err := v1.New(read(t, "libraries.yml"), v1.YAML)
	require.NoError(t, err)

	var warnings []*log.Entry
	for _, e := range handler.Entries {
		if e.Level == log.WarnLevel {
			warnings = append(warnings, e)
		}
	}
	require.Len(t, warnings, 1)
	assert.Equal(t, "tink", warnings[0].Fields["library"])
	assert.Equal(t, "a1b2c3d4", warnings[0].Fields["version"])
}
