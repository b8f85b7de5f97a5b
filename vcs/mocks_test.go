package vcs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fossas/vcsfetch/exec"
	"github.com/fossas/vcsfetch/services"
)

// call is one recorded invocation of the client executable.
type call struct {
	Dir  string
	Name string
	Args string
}

// MockExec records every command and replays scripted results keyed by the
// space-joined argument list. The last scripted result for a key repeats.
// Unscripted commands succeed with no output.
type MockExec struct {
	wd      *MockWorkDir
	calls   []call
	results map[string][]exec.Result

	// Hook, when set, is consulted before the scripted results.
	Hook func(name string, args []string) (exec.Result, bool)
}

func (m *MockExec) Script(args string, results ...exec.Result) {
	if m.results == nil {
		m.results = make(map[string][]exec.Result)
	}
	m.results[args] = append(m.results[args], results...)
}

func (m *MockExec) RunCWD(cmd string, args ...string) exec.Result {
	key := strings.Join(args, " ")
	m.calls = append(m.calls, call{Dir: m.wd.cwd, Name: cmd, Args: key})
	if m.Hook != nil {
		if res, ok := m.Hook(cmd, args); ok {
			return res
		}
	}
	rs := m.results[key]
	if len(rs) == 0 {
		return exec.Result{}
	}
	if len(rs) > 1 {
		m.results[key] = rs[1:]
	}
	return rs[0]
}

func (m *MockExec) Which(args []string, candidates ...string) (string, string, error) {
	return "", "", errors.New("not implemented")
}

// Commands returns the argument lists of every recorded call.
func (m *MockExec) Commands() []string {
	var out []string
	for _, c := range m.calls {
		out = append(out, c.Args)
	}
	return out
}

// Count returns how many times args were run.
func (m *MockExec) Count(args string) int {
	n := 0
	for _, c := range m.calls {
		if c.Args == args {
			n++
		}
	}
	return n
}

type MockWorkDir struct {
	cwd     string
	entered []string
}

func (w *MockWorkDir) Getwd() (string, error) { return w.cwd, nil }

func (w *MockWorkDir) Chdir(dir string) error {
	w.cwd = dir
	w.entered = append(w.entered, dir)
	return nil
}

type MockPrompt struct {
	Answer bool
	asked  []string
}

func (p *MockPrompt) Ask(message string) bool {
	p.asked = append(p.asked, message)
	return p.Answer
}

type MockLogger struct {
	printed  []string
	warnings []string
}

func (l *MockLogger) Debugf(format string, args ...interface{}) {}

func (l *MockLogger) Noticef(format string, args ...interface{}) {}

func (l *MockLogger) Warningf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *MockLogger) Printf(format string, args ...interface{}) {
	l.printed = append(l.printed, fmt.Sprintf(format, args...))
}

type MockEnv struct {
	vars  map[string]string
	reads int
}

func (e *MockEnv) Getenv(key string) string {
	if key == "PATH" {
		e.reads++
	}
	return e.vars[key]
}

func (e *MockEnv) Setenv(key, value string) error {
	e.vars[key] = value
	return nil
}

type MockFS struct {
	folders map[string]bool
}

func (f *MockFS) HasFile(pathElems ...string) bool { return false }

func (f *MockFS) HasFolder(pathElems ...string) bool {
	return f.folders[strings.Join(pathElems, "/")]
}

// mocks bundles every fake so tests can script and inspect them.
type mocks struct {
	Exec   *MockExec
	WD     *MockWorkDir
	Prompt *MockPrompt
	Logger *MockLogger
	Env    *MockEnv
	FS     *MockFS
}

func newMocks() *mocks {
	wd := &MockWorkDir{cwd: "/work"}
	return &mocks{
		Exec:   &MockExec{wd: wd},
		WD:     wd,
		Prompt: &MockPrompt{},
		Logger: &MockLogger{},
		Env:    &MockEnv{vars: map[string]string{}},
		FS:     &MockFS{folders: map[string]bool{}},
	}
}

func (m *mocks) Services() services.Services {
	return services.Services{
		Logger:     m.Logger,
		Exec:       m.Exec,
		FileSystem: m.FS,
		Prompt:     m.Prompt,
		WorkDir:    m.WD,
		Env:        m.Env,
	}
}

var failed = exec.Result{Code: 1}
