package services_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fossas/vcsfetch/services"
)

type nopLogger struct{ warnings []string }

func (l *nopLogger) Debugf(format string, args ...interface{}) {}

func (l *nopLogger) Noticef(format string, args ...interface{}) {}

func (l *nopLogger) Warningf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, format)
}

func (l *nopLogger) Printf(format string, args ...interface{}) {}

type fakeWorkDir struct {
	cwd     string
	history []string
	failOn  string
}

func (w *fakeWorkDir) Getwd() (string, error) { return w.cwd, nil }

func (w *fakeWorkDir) Chdir(dir string) error {
	if dir == w.failOn {
		return errors.New("no such directory")
	}
	w.cwd = dir
	w.history = append(w.history, dir)
	return nil
}

func TestWithinRestoresOnSuccess(t *testing.T) {
	wd := &fakeWorkDir{cwd: "/start"}
	var inside string
	err := services.Within(wd, "/checkout", func() error {
		inside = wd.cwd
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "/checkout", inside)
	assert.Equal(t, "/start", wd.cwd)
}

func TestWithinRestoresOnError(t *testing.T) {
	wd := &fakeWorkDir{cwd: "/start"}
	expected := errors.New("expected failure")
	err := services.Within(wd, "/checkout", func() error {
		return expected
	})
	assert.Equal(t, expected, err)
	assert.Equal(t, "/start", wd.cwd)
	assert.Equal(t, []string{"/checkout", "/start"}, wd.history)
}

func TestWithinDoesNotRunWhenEnterFails(t *testing.T) {
	wd := &fakeWorkDir{cwd: "/start", failOn: "/missing"}
	ran := false
	err := services.Within(wd, "/missing", func() error {
		ran = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, ran)
	assert.Equal(t, "/start", wd.cwd)
}

func TestPromptReadsAnswers(t *testing.T) {
	var out bytes.Buffer
	p := services.NewPrompt(&nopLogger{}, strings.NewReader("maybe\nY\n"), &out, false)
	assert.True(t, p.Ask("Reset changes?"))
	assert.Equal(t, 2, strings.Count(out.String(), "Reset changes?"))

	p = services.NewPrompt(&nopLogger{}, strings.NewReader("no\n"), &out, false)
	assert.False(t, p.Ask("Reset changes?"))
}

func TestPromptEndOfInputIsRefusal(t *testing.T) {
	var out bytes.Buffer
	p := services.NewPrompt(&nopLogger{}, strings.NewReader(""), &out, false)
	assert.False(t, p.Ask("Reset changes?"))
}

func TestPromptAssumeYes(t *testing.T) {
	var out bytes.Buffer
	p := services.NewPrompt(&nopLogger{}, strings.NewReader(""), &out, true)
	assert.True(t, p.Ask("Reset changes?"))
	assert.Empty(t, out.String())
}
