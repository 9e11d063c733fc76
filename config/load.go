package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Load reads a site configuration file. The result is not resolved.
func Load(filename string) (SiteConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return SiteConfig{}, errors.WithStack(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return SiteConfig{}, errors.Wrapf(err, "parse %s", filename)
	}

	return cfg, nil
}

// Parse decodes a YAML (or JSON) site configuration.
func Parse(data []byte) (SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, errors.WithStack(err)
	}
	return cfg, nil
}

// Marshal encodes v as YAML. Map keys are emitted sorted, so equal values
// encode to equal bytes.
func Marshal(v interface{}) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}
