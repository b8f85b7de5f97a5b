package config

import (
	"errors"

	"github.com/fossas/vcsfetch/files"
)

var ErrFileNotFound = errors.New("no files existed")

// TryStrings returns the first non-empty candidate.
func TryStrings(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// TryFiles returns the first candidate that is an existing regular file.
func TryFiles(candidates ...string) (string, error) {
	for _, c := range candidates {
		ok, err := files.Exists(c)
		if err != nil {
			return "", err
		}
		if ok {
			return c, nil
		}
	}
	return "", ErrFileNotFound
}
