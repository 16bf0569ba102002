package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/ppgen/internal/model"
)

// EnvVar overrides the config file search path when set.
const EnvVar = "PPGEN_CONFIG"

// Config holds user defaults for generation flags. Zero values mean
// "not set" and leave the built-in default in place.
type Config struct {
	// Words is the default word count for passphrase mode.
	Words int `json:"words,omitempty" yaml:"words,omitempty"`

	// CharCount restricts the pool to words of this many hanzi
	// characters by default.
	CharCount int `json:"chars,omitempty" yaml:"chars,omitempty"`

	// Separator is the default joining separator.
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`

	// Capitalize enables random capitalization by default.
	Capitalize bool `json:"capitalize,omitempty" yaml:"capitalize,omitempty"`

	// Digits is the default number of interspersed digits.
	Digits int `json:"digits,omitempty" yaml:"digits,omitempty"`

	// MinLength is the default minimum length for complex mode.
	MinLength int `json:"minLength,omitempty" yaml:"minLength,omitempty"`
}

// Validate rejects values that would later fail request validation,
// so a broken defaults file is reported as such rather than blamed on
// the command line.
func (c *Config) Validate() error {
	if c.Words < 0 {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("config: words must not be negative, got %d", c.Words))
	}
	if c.CharCount < 0 {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("config: chars must not be negative, got %d", c.CharCount))
	}
	if c.Digits < 0 {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("config: digits must not be negative, got %d", c.Digits))
	}
	if c.MinLength < 0 {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("config: minLength must not be negative, got %d", c.MinLength))
	}
	if c.Separator != "" {
		if err := model.ValidateSeparator(c.Separator); err != nil {
			return err
		}
	}
	return nil
}

// Load finds and parses the defaults file. The returned path is empty
// when no file was found, in which case the zero Config is returned.
func Load() (*Config, string, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return &Config{}, "", nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// LoadFile parses a specific defaults file, picking the decoder from
// the file extension. Unknown extensions are treated as JSONC, which
// also accepts plain JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("invalid YAML in config file %s", path), err)
		}
	default:
		// jsonc.ToJSON strips comments and trailing commas,
		// leaving standard JSON for encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("invalid JSON in config file %s", path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile locates the defaults file. Search order:
//  1. $PPGEN_CONFIG (must exist if set)
//  2. <UserConfigDir>/ppgen/config.jsonc
//  3. <UserConfigDir>/ppgen/config.yaml
func findConfigFile() (string, error) {
	if env := os.Getenv(EnvVar); env != "" {
		if _, err := os.Stat(env); err != nil {
			return "", model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("%s points to an unreadable file %s", EnvVar, env), err)
		}
		return env, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		// No user config dir (rare, e.g. $HOME unset): fall back
		// to built-in defaults rather than failing a generation.
		return "", nil
	}

	for _, name := range []string{"config.jsonc", "config.yaml"} {
		candidate := filepath.Join(base, "ppgen", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}
