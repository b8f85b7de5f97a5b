package files

import (
	"errors"
	"path/filepath"
)

var (
	ErrDirNotFound = errors.New("no directory found during walk")
	ErrStopWalk    = errors.New("stop walking up")
)

// A WalkUpFunc is called with each directory visited by WalkUp.
type WalkUpFunc func(dir string) error

// WalkUp calls walker with startdir made absolute, then with each of its
// ancestors up to and including the filesystem root.
//
// Returning ErrStopWalk stops the walk, and WalkUp returns the directory
// being visited. Any other error stops the walk and is returned. A walk that
// reaches past the root returns ErrDirNotFound.
func WalkUp(startdir string, walker WalkUpFunc) (string, error) {
	dir, err := filepath.Abs(startdir)
	if err != nil {
		return "", err
	}

	for {
		switch err := walker(dir); err {
		case nil:
		case ErrStopWalk:
			return dir, nil
		default:
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrDirNotFound
		}
		dir = parent
	}
}
