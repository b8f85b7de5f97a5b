package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blang/semver"
)

// These are set by linker flags at release time.
var (
	BuildType string
	Version   string
	Commit    string
	GoVersion string
)

var ErrIsDevelopment = errors.New("this development binary has no semantic version")

func IsDevelopment() bool {
	return BuildType == "" || BuildType == "development"
}

func String() string {
	if IsDevelopment() {
		return fmt.Sprintf("development (revision %s)", TryCommit())
	}
	return fmt.Sprintf("%s (revision %s compiled with %s)", Version, Commit, GoVersion)
}

func TryCommit() string {
	if Commit == "" {
		return "unknown"
	}
	return Commit
}

func Semver() (semver.Version, error) {
	if IsDevelopment() {
		return semver.Version{}, ErrIsDevelopment
	}
	return semver.Parse(strings.TrimPrefix(Version, "v"))
}
