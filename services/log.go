package services

import (
	"fmt"

	"github.com/apex/log"
)

type logService struct{}

func newLogService() LogService {
	return logService{}
}

func (logService) Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func (logService) Noticef(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func (logService) Warningf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func (logService) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}
