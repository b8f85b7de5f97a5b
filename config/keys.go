package config

import (
	"os"
	"path/filepath"

	isatty "github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/fossas/vcsfetch/cmd/vcsfetch/flags"
	"github.com/fossas/vcsfetch/library"
	"github.com/fossas/vcsfetch/vcs"
)

/**** Global configuration keys ****/

var (
	filename string
)

// Interactive is true if the user desires interactive output.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && !BoolFlag(flags.NoAnsi)
}

// Debug is true if the user has requested debug-level logging.
func Debug() bool {
	return BoolFlag(flags.Debug)
}

// AssumeYes is true if confirmation prompts should be answered automatically.
func AssumeYes() bool {
	return BoolFlag(flags.Yes)
}

// Filepath is the configuration file path.
func Filepath() string {
	return filename
}

/**** Library configuration keys ****/

// Root is the directory holding library checkouts. A root set in the
// configuration file is relative to the file's directory.
func Root() (string, error) {
	fileRoot := file.Root()
	if fileRoot != "" && !filepath.IsAbs(fileRoot) && filename != "" {
		fileRoot = filepath.Join(filepath.Dir(filename), fileRoot)
	}
	root := TryStrings(StringFlag(flags.Root), os.Getenv("VCSFETCH_ROOT"), fileRoot)
	if root == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", errors.Wrap(err, "could not find home directory for the default library root")
		}
		root = filepath.Join(home, ".vcsfetch", "lib")
	}
	root, err := homedir.Expand(root)
	if err != nil {
		return "", err
	}
	return filepath.Abs(root)
}

// Libraries are the libraries listed in the configuration file.
func Libraries() []library.Library {
	return file.Libraries()
}

// Library looks up a configured library by name.
func Library(name string) (library.Library, bool) {
	for _, lib := range file.Libraries() {
		if lib.Name == name {
			return lib, true
		}
	}
	return library.Library{}, false
}

/**** Fetch configuration keys ****/

// VCS is the version control system requested with --vcs.
func VCS() (vcs.ID, error) {
	return vcs.ParseID(TryStrings(StringFlag(flags.VCS), vcs.Git.String()))
}

func Branch() string {
	return StringFlag(flags.Branch)
}

func Version() string {
	return StringFlag(flags.Version)
}

// Settings are the clone and update settings requested on the command line.
func Settings() vcs.Settings {
	return vcs.Settings{
		Flat:  BoolFlag(flags.Flat),
		Debug: Debug(),
	}
}

/**** Flag helpers ****/

// StringFlag reads a string flag, returning "" before a context is set.
func StringFlag(name string) string {
	if ctx == nil {
		return ""
	}
	return ctx.String(name)
}

// BoolFlag reads a boolean flag, returning false before a context is set.
func BoolFlag(name string) bool {
	if ctx == nil {
		return false
	}
	return ctx.Bool(name)
}
