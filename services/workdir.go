package services

import (
	"os"

	"github.com/pkg/errors"
)

type workDirService struct{}

func newWorkDirService() WorkDirService {
	return workDirService{}
}

func (workDirService) Getwd() (string, error) {
	return os.Getwd()
}

func (workDirService) Chdir(dir string) error {
	return os.Chdir(dir)
}

// Within changes the working directory to dir, calls fn, and then restores the
// previous working directory whether or not fn returned an error. A failure to
// restore is only reported when fn itself succeeded.
func Within(wd WorkDirService, dir string, fn func() error) (err error) {
	prev, err := wd.Getwd()
	if err != nil {
		return errors.Wrap(err, "could not read working directory")
	}
	if err := wd.Chdir(dir); err != nil {
		return errors.Wrapf(err, "could not enter %s", dir)
	}
	defer func() {
		restoreErr := wd.Chdir(prev)
		if restoreErr != nil && err == nil {
			err = errors.Wrapf(restoreErr, "could not return to %s", prev)
		}
	}()

	return fn()
}
