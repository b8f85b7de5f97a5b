package services

import (
	"github.com/fossas/vcsfetch/exec"
)

type execService struct{}

func newExecService() ExecService {
	return execService{}
}

func (execService) RunCWD(cmd string, args ...string) exec.Result {
	return exec.Status(exec.Cmd{
		Name: cmd,
		Argv: args,
	})
}

func (execService) Which(args []string, candidates ...string) (string, string, error) {
	return exec.WhichArgs(args, candidates...)
}
