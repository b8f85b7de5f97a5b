// Package services defines the side-effecting collaborators used by the VCS
// drivers. Each service is an interface so that tests can substitute fakes.
package services

import (
	"github.com/fossas/vcsfetch/exec"
)

// New constructs and initializes a default implementation of Services.
//
// If `assumeYes` is true the prompt confirms every question without reading
// input.
func New(interactive, assumeYes bool) Services {
	logService := newLogService()

	return Services{
		Logger:     logService,
		Exec:       newExecService(),
		FileSystem: newFileService(),
		Prompt:     newPromptService(logService, interactive, assumeYes),
		WorkDir:    newWorkDirService(),
		Env:        newEnvService(),
	}
}

// Services is a container for all services. Each service implements
// side-effecting functions.
type Services struct {
	Logger     LogService
	Exec       ExecService
	FileSystem FileService
	Prompt     PromptService
	WorkDir    WorkDirService
	Env        EnvService
}

// A LogService implements all logging functionality. All output is printed
// to STDERR, except for the specific case of `Printf()`, which prints to
// STDOUT.
type LogService interface {
	// Debug statements are meant for diagnosing and resolving issues. They are
	// not shown unless `--debug` is specified.
	Debugf(format string, args ...interface{})

	// Notices inform the user of a non-error condition that is important.
	Noticef(format string, args ...interface{})

	// Warnings inform the user of a non-fatal error condition.
	Warningf(format string, args ...interface{})

	// Printing sends output to STDOUT.
	Printf(format string, args ...interface{})
}

// An ExecService implements calls to external commands.
type ExecService interface {
	// RunCWD runs cmd in the process working directory.
	RunCWD(cmd string, args ...string) exec.Result

	Which(args []string, candidates ...string) (cmd string, version string, err error)
}

// A FileService implements filesystem probes.
type FileService interface {
	HasFile(pathElems ...string) bool
	HasFolder(pathElems ...string) bool
}

// A PromptService asks the user yes/no questions. Ask blocks until the user
// answers.
type PromptService interface {
	Ask(message string) bool
}

// A WorkDirService reads and changes the process working directory. The
// working directory is shared by the whole process, so callers must not
// change it concurrently.
type WorkDirService interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

// An EnvService reads and writes process environment variables.
type EnvService interface {
	Getenv(key string) string
	Setenv(key, value string) error
}
