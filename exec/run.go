// Package exec runs external version control clients and captures their output.
package exec

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/apex/log"
)

// Cmd represents a single invocation of an executable.
type Cmd struct {
	Name string   // Executable name.
	Argv []string // Executable arguments.

	Dir string // The Command's working directory. Empty means the process working directory.

	// If neither Env nor WithEnv are set, the environment is inherited from os.Environ().
	Env     map[string]string // If set, the command's environment is _set_ to Env.
	WithEnv map[string]string // If set, the command's environment is _added_ to WithEnv.
}

// Result is the outcome of a command that ran to completion (or failed to
// start). Out holds STDOUT when Code is 0 and STDERR otherwise.
type Result struct {
	Code int
	Out  string

	// Err is set when the executable could not be started at all. Code is -1
	// in that case.
	Err error
}

// OK is true if the command exited with status 0.
func (r Result) OK() bool {
	return r.Code == 0 && r.Err == nil
}

// BuildExec constructs the underlying *exec.Cmd without running it.
func BuildExec(cmd Cmd) (*exec.Cmd, *bytes.Buffer) {
	var stderrBuffer bytes.Buffer
	xc := exec.Command(cmd.Name, cmd.Argv...)
	xc.Stderr = &stderrBuffer

	if cmd.Dir != "" {
		xc.Dir = cmd.Dir
	}

	if cmd.Env != nil {
		xc.Env = toEnv(cmd.Env)
	} else if cmd.WithEnv != nil {
		xc.Env = append(xc.Env, toEnv(cmd.WithEnv)...)
		xc.Env = append(xc.Env, os.Environ()...)
	} else {
		xc.Env = os.Environ()
	}

	return xc, &stderrBuffer
}

// Run executes a `Cmd`.
func Run(cmd Cmd) (stdout, stderr string, err error) {
	log.WithFields(log.Fields{
		"name": cmd.Name,
		"argv": cmd.Argv,
		"dir":  cmd.Dir,
	}).Debug("running command")

	xc, stderrBuffer := BuildExec(cmd)
	stdoutBuffer, err := xc.Output()
	stdout = string(stdoutBuffer)
	stderr = stderrBuffer.String()

	log.WithFields(log.Fields{
		"stdout": stdout,
		"stderr": stderr,
	}).Debug("done running")

	return stdout, stderr, err
}

// Status executes a `Cmd` and reports its exit code rather than an error for
// non-zero exits. Only a failure to start the executable sets Result.Err.
func Status(cmd Cmd) Result {
	stdout, stderr, err := Run(cmd)
	if err == nil {
		return Result{Code: 0, Out: stdout}
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		code := exitErr.ExitCode()
		log.WithField("code", code).Debug("command exited with non-zero status")
		return Result{Code: code, Out: stderr}
	}
	log.WithError(err).WithField("name", cmd.Name).Debug("could not start command")
	return Result{Code: -1, Out: err.Error(), Err: err}
}

func toEnv(env map[string]string) []string {
	var out []string
	for key, val := range env {
		out = append(out, key+"="+val)
	}
	return out
}
