// Package config loads guidora settings from yaml.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	LogFile     string   `yaml:"log_file"`
	AltScreen   bool     `yaml:"alt_screen"`
	Brand       string   `yaml:"brand"`
	Tagline     string   `yaml:"tagline"`
	PhoneLength int      `yaml:"phone_length"`
	Roles       []string `yaml:"roles"`
}

// Sample is written by WriteSample.
const Sample = `# guidora configuration

# log lines go here, the terminal belongs to the ui
log_file: guidora.log
alt_screen: true

brand: GUIDORA
tagline: One conversation away from wisdom
phone_length: 11
roles:
  - Regular user
  - Legal advisor
  - Academic advisor
`

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogFile:     "guidora.log",
		AltScreen:   true,
		Brand:       "GUIDORA",
		Tagline:     "One conversation away from wisdom",
		PhoneLength: 11,
		Roles:       []string{"Regular user", "Legal advisor", "Academic advisor"},
	}
}

// Load reads path over the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (cfg *Config, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	cfg = Default()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal %s", path)
		return
	}

	err = cfg.check()
	return
}

// Write marshals cfg to path.
func (cfg *Config) Write(path string, mode os.FileMode) (err error) {

	data, err := yaml.Marshal(cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}

	err = os.WriteFile(path, data, mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// WriteSample writes the sample config to path unless a file is already there.
func WriteSample(path string, mode os.FileMode) (wrote bool, err error) {

	_, err = os.Stat(path)
	if err == nil {
		return // already have a cfg
	}

	err = os.WriteFile(path, []byte(Sample), mode)
	if err != nil {
		err = errors.Wrapf(err, "failed to write to %s", path)
		return
	}

	wrote = true
	return
}

// unexported

func (cfg *Config) check() (err error) {

	if cfg.PhoneLength < 0 {
		err = errors.Errorf("phone_length must not be negative, got %d", cfg.PhoneLength)
		return
	}
	if len(cfg.Roles) == 0 {
		err = errors.Errorf("at least one role is required")
	}
	return
}
