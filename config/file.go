package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	v1 "github.com/fossas/vcsfetch/config/file.v1"
	"github.com/fossas/vcsfetch/files"
	"github.com/fossas/vcsfetch/library"
)

// File is a parsed configuration file.
type File interface {
	Root() string
	Libraries() []library.Library
}

// NoFile is used when no configuration file exists.
type NoFile struct{}

func (NoFile) Root() string { return "" }

func (NoFile) Libraries() []library.Library { return nil }

// Filenames are the configuration file names looked for, in order.
var Filenames = []string{".vcsfetch.yml", ".vcsfetch.yaml", ".vcsfetch.toml"}

// ReadFile reads the configuration file at filename. If filename is empty, the
// nearest configuration file in the working directory or its ancestors is
// used, and NoFile is returned when there is none.
func ReadFile(filename string) (File, string, error) {
	if filename == "" {
		found, err := findFile(".")
		if err == files.ErrDirNotFound {
			return NoFile{}, "", nil
		}
		if err != nil {
			return NoFile{}, "", err
		}
		filename = found
	}

	data, err := files.Read(filename)
	if err != nil {
		return NoFile{}, "", errors.Wrapf(err, "could not read configuration file %s", filename)
	}

	unmarshal := v1.YAML
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		unmarshal = v1.TOML
	}
	file, err := v1.New(data, unmarshal)
	if err != nil {
		return NoFile{}, "", errors.Wrapf(err, "could not parse configuration file %s", filename)
	}
	return file, filename, nil
}

func findFile(start string) (string, error) {
	var found string
	_, err := files.WalkUp(start, func(dir string) error {
		candidates := make([]string, len(Filenames))
		for i, name := range Filenames {
			candidates[i] = filepath.Join(dir, name)
		}
		f, err := TryFiles(candidates...)
		if err == ErrFileNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = f
		return files.ErrStopWalk
	})
	return found, err
}
