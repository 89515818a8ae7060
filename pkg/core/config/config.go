// ============================================================================
// mBASIC - BASIC Front End
// ============================================================================
//
// Package:     config
// Description: Typed configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mbasic/foundation/core/error"
	mdwlog "github.com/msto63/mbasic/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "MBASIC_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig    `toml:"general" yaml:"general"`
	Parser    ParserConfig     `toml:"parser" yaml:"parser"`
	Functions []FunctionConfig `toml:"functions" yaml:"functions"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string   `toml:"name" yaml:"name"`
	LogLevel    string   `toml:"log_level" yaml:"log_level"`
	LogFormat   string   `toml:"log_format" yaml:"log_format"`
	LoadTimeout Duration `toml:"load_timeout" yaml:"load_timeout"`
}

// ParserConfig holds parser limits. Zero selects the parser default.
type ParserConfig struct {
	MaxLineLength      int `toml:"max_line_length" yaml:"max_line_length"`
	MaxStatementDepth  int `toml:"max_statement_depth" yaml:"max_statement_depth"`
	MaxExpressionDepth int `toml:"max_expression_depth" yaml:"max_expression_depth"`
	CacheSize          int `toml:"cache_size" yaml:"cache_size"` // parsed lines kept in memory
}

// FunctionConfig declares a user function in addition to the builtins.
// MaxArgs of -1 accepts any number of arguments from MinArgs up.
type FunctionConfig struct {
	Name        string `toml:"name" yaml:"name"`
	MinArgs     int    `toml:"min_args" yaml:"min_args"`
	MaxArgs     int    `toml:"max_args" yaml:"max_args"`
	Description string `toml:"description" yaml:"description"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML (.toml) or YAML (.yaml, .yml) file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.DecodeFile(path, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	default:
		return nil, mdwerror.Newf("unsupported config format %q", ext).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the MBASIC_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/mbasic.toml",
			"./mbasic.toml",
			"./mbasic.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/mbasic/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set MBASIC_CONFIG or create configs/mbasic.toml").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", err)
	}
	if c.General.LoadTimeout.Duration < 0 {
		return invalid("general.load_timeout", mdwerror.New("must not be negative"))
	}

	limits := []struct {
		field string
		value int
	}{
		{"parser.max_line_length", c.Parser.MaxLineLength},
		{"parser.max_statement_depth", c.Parser.MaxStatementDepth},
		{"parser.max_expression_depth", c.Parser.MaxExpressionDepth},
		{"parser.cache_size", c.Parser.CacheSize},
	}
	for _, l := range limits {
		if l.value < 0 {
			return invalid(l.field, mdwerror.Newf("must not be negative, got %d", l.value))
		}
	}

	for i, fn := range c.Functions {
		field := "functions[" + strconv.Itoa(i) + "]"
		switch {
		case strings.TrimSpace(fn.Name) == "":
			return invalid(field+".name", mdwerror.New("must not be empty"))
		case fn.MinArgs < 0:
			return invalid(field+".min_args", mdwerror.Newf("must not be negative, got %d", fn.MinArgs))
		case fn.MaxArgs != -1 && fn.MaxArgs < fn.MinArgs:
			return invalid(field+".max_args", mdwerror.Newf("must be -1 or at least min_args, got %d", fn.MaxArgs))
		}
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "mBASIC"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.LoadTimeout.Duration == 0 {
		c.General.LoadTimeout.Duration = 30 * time.Second
	}
}

func decodeYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func invalid(field string, cause error) error {
	return mdwerror.Wrap(cause, "invalid configuration value for "+field).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("field", field)
}
