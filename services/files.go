package services

import (
	"github.com/apex/log"

	"github.com/fossas/vcsfetch/files"
)

type fileService struct{}

func newFileService() FileService {
	return fileService{}
}

func (fileService) HasFile(pathElems ...string) bool {
	ok, err := files.Exists(pathElems...)
	if err != nil {
		log.WithError(err).WithField("path", pathElems).Debug("could not stat file")
	}
	return ok
}

func (fileService) HasFolder(pathElems ...string) bool {
	ok, err := files.ExistsFolder(pathElems...)
	if err != nil {
		log.WithError(err).WithField("path", pathElems).Debug("could not stat folder")
	}
	return ok
}
