package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read by the CLI when --config is not given
const DefaultConfigFile = "yt-clipper.yaml"

// LoadFile reads YAML options from path. A missing file yields the defaults.
func LoadFile(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, errors.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	opts.Normalize()
	return opts, nil
}

// SaveFile writes options to path as YAML
func SaveFile(opts Options, path string) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return errors.Wrap(err, "failed to serialize config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}
