package vcs

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Available implements VCS.
func (c *client) Available() bool {
	if !c.state.checked {
		c.check()
	}
	return c.state.available
}

// Recheck implements VCS.
func (c *client) Recheck() bool {
	return c.check()
}

// check probes the executable, searching for it once if the probe fails.
func (c *client) check() bool {
	if c.probe() || c.state.searched {
		return c.state.available
	}
	c.search()
	return c.state.available
}

func (c *client) probe() bool {
	res := c.run(c.probeArgs...)
	c.state.checked = true
	c.state.available = res.OK()
	if res.Err != nil {
		c.svc.Logger.Debugf("could not start %s: %s", c.desc.Executable, res.Err)
	}
	return c.state.available
}

// search makes the executable reachable by extending PATH. It first derives a
// "bin" directory from PATH entries that follow the "<prefix><name>/cmd"
// packaging layout (e.g. Git for Windows), then falls back to conventional
// install directories, probing after each change.
func (c *client) search() {
	c.state.searched = true

	name := strings.TrimSuffix(filepath.Base(c.desc.Executable), ".exe")
	var patched []string
	for _, entry := range filepath.SplitList(c.svc.Env.Getenv("PATH")) {
		if dir, ok := derivedBinDir(name, entry); ok {
			patched = append(patched, dir)
		}
	}
	if len(patched) > 0 {
		for _, dir := range patched {
			c.appendPath(dir)
		}
		if c.probe() {
			return
		}
	}

	for _, dir := range c.installDirs {
		if !c.svc.FileSystem.HasFolder(dir) {
			continue
		}
		c.appendPath(dir)
		if c.probe() {
			return
		}
	}
	c.svc.Logger.Debugf("could not find %s executable %q", c.desc.Name, c.desc.Executable)
}

// derivedBinDir maps ".../<name>/cmd" to ".../<name>/bin", matching
// case-insensitively and keeping the entry's own casing and separator.
func derivedBinDir(name, entry string) (string, bool) {
	pattern := regexp.MustCompile(`(?i)^(.*)(` + regexp.QuoteMeta(name) + `)([\\/])cmd$`)
	m := pattern.FindStringSubmatch(entry)
	if m == nil {
		return "", false
	}
	return m[1] + m[2] + m[3] + "bin", true
}

func (c *client) appendPath(dir string) {
	path := c.svc.Env.Getenv("PATH")
	if path == "" {
		path = dir
	} else {
		path = path + string(os.PathListSeparator) + dir
	}
	c.svc.Logger.Debugf("adding %s to PATH", dir)
	if err := c.svc.Env.Setenv("PATH", path); err != nil {
		c.svc.Logger.Warningf("could not update PATH: %s", err)
	}
}

func installDirs(id ID) []string {
	if runtime.GOOS == "windows" {
		switch id {
		case Git:
			return []string{`C:\Program Files (x86)\Git\bin`, `C:\Progra~1\Git\bin`}
		case Mercurial:
			return []string{`C:\Program Files\Mercurial`, `C:\Program Files (x86)\Mercurial`}
		}
		return nil
	}
	return []string{"/usr/local/bin", "/opt/homebrew/bin", "/opt/local/bin"}
}
