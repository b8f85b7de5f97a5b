package v1

import (
	"github.com/BurntSushi/toml"
	"github.com/apex/log"
	"github.com/blang/semver"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/fossas/vcsfetch/library"
	"github.com/fossas/vcsfetch/vcs"
)

var (
	ErrWrongVersion = errors.New("config file version is not 1")
)

// An UnmarshalFunc decodes a configuration document.
type UnmarshalFunc func(data []byte, v interface{}) error

var (
	YAML UnmarshalFunc = yaml.Unmarshal
	TOML UnmarshalFunc = toml.Unmarshal
)

type File struct {
	Version int `yaml:"version" toml:"version"`

	LibraryRoot string              `yaml:"root,omitempty" toml:"root"`
	Entries     []LibraryProperties `yaml:"libraries,omitempty" toml:"libraries"`

	// Internal computed + cached properties.
	libraries []library.Library
}

type LibraryProperties struct {
	Name    string                 `yaml:"name" toml:"name"`
	VCS     string                 `yaml:"vcs,omitempty" toml:"vcs"`
	URL     string                 `yaml:"url" toml:"url"`
	Branch  string                 `yaml:"branch,omitempty" toml:"branch"`
	Version string                 `yaml:"version,omitempty" toml:"version"`
	Options map[string]interface{} `yaml:"options,omitempty" toml:"options"`
}

func New(data []byte, unmarshal UnmarshalFunc) (File, error) {
	// Check whether version is correct. We first unmarshal into a map so that if
	// the type of `version` is not an integer, we can identify that issue
	// distinct from a malformed document and handle it specially.
	var contents map[string]interface{}
	err := unmarshal(data, &contents)
	if err != nil {
		return File{}, err
	}
	switch v := contents["version"].(type) {
	case int:
		if v != 1 {
			return File{}, ErrWrongVersion
		}
	case int64:
		if v != 1 {
			return File{}, ErrWrongVersion
		}
	default:
		return File{}, ErrWrongVersion
	}

	var file File
	err = unmarshal(data, &file)
	if err != nil {
		return File{}, err
	}

	seen := make(map[string]bool)
	for i, config := range file.Entries {
		log.WithField("config", config).Debug("parsed library configuration")
		lib, err := parseLibrary(config)
		if err != nil {
			return File{}, errors.Wrapf(err, "invalid library #%d", i+1)
		}
		if seen[lib.Name] {
			return File{}, errors.Errorf("library %s is listed more than once", lib.Name)
		}
		seen[lib.Name] = true
		file.libraries = append(file.libraries, lib)
	}

	return file, nil
}

func parseLibrary(config LibraryProperties) (library.Library, error) {
	if config.Name == "" {
		return library.Library{}, errors.New("library has no name")
	}
	if config.URL == "" {
		return library.Library{}, errors.Errorf("library %s has no url", config.Name)
	}

	id := vcs.Git
	if config.VCS != "" {
		parsed, err := vcs.ParseID(config.VCS)
		if err != nil {
			return library.Library{}, errors.Wrapf(err, "library %s", config.Name)
		}
		id = parsed
	}

	if config.Version != "" {
		if _, err := semver.ParseTolerant(config.Version); err != nil {
			log.WithField("library", config.Name).WithField("version", config.Version).Warn("version is not a semantic version; it will be checked out as given")
		}
	}

	settings, err := DecodeSettings(config.Options)
	if err != nil {
		return library.Library{}, errors.Wrapf(err, "library %s has invalid options", config.Name)
	}

	return library.Library{
		Name:     config.Name,
		VCS:      id,
		URL:      config.URL,
		Branch:   config.Branch,
		Version:  config.Version,
		Settings: settings,
	}, nil
}

// DecodeSettings converts a free-form options map into settings. Unknown keys
// are rejected; string values such as "true" are accepted for booleans.
func DecodeSettings(options map[string]interface{}) (vcs.Settings, error) {
	var settings vcs.Settings
	if len(options) == 0 {
		return settings, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &settings,
	})
	if err != nil {
		return vcs.Settings{}, err
	}
	if err := decoder.Decode(options); err != nil {
		return vcs.Settings{}, err
	}
	return settings, nil
}

func (file File) Root() string {
	return file.LibraryRoot
}

func (file File) Libraries() []library.Library {
	return file.libraries
}
