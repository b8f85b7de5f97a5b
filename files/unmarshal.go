package files

import (
	"github.com/BurntSushi/toml"
	"github.com/apex/log"
	yaml "gopkg.in/yaml.v2"
)

func ReadTOML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, toml.Unmarshal)
}

func ReadYAML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, yaml.Unmarshal)
}

type UnmarshalFunc func(data []byte, v interface{}) error

func ReadUnmarshal(v interface{}, path string, unmarshal UnmarshalFunc) error {
	log.WithField("file", path).Debug("parsing file")
	contents, err := Read(path)
	if err != nil {
		return err
	}
	err = unmarshal(contents, v)
	if err != nil {
		log.WithError(err).WithField("file", path).Debug("could not parse file")
	}
	return err
}
