package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the options file picked up from the working
// directory when --config is not given.
const DefaultConfigPath = ".nox.yml"

// Config holds the options of a nox run.
type Config struct {
	Paths       []string `yaml:"paths" validate:"required,min=1,dive,required"`
	Output      string   `yaml:"output" validate:"required"`
	Format      string   `yaml:"format" validate:"oneof=json yaml yml"`
	Extensions  []string `yaml:"extensions" validate:"required,min=1,dive,startswith=."`
	ExcludeDirs []string `yaml:"exclude" validate:"dive,required"`
	LogLevel    string   `yaml:"logLevel" validate:"oneof=debug info warn warning error"`
	Concurrency int      `yaml:"concurrency" validate:"gte=0"`
	ConfigPath  string   `yaml:"-"`
}

// DefaultConfig returns the options used when neither flags nor an
// options file say otherwise.
func DefaultConfig() Config {
	return Config{
		Paths:       []string{"lib"},
		Output:      "-",
		Format:      "json",
		Extensions:  []string{".js"},
		ExcludeDirs: []string{"node_modules"},
		LogLevel:    "warn",
		ConfigPath:  DefaultConfigPath,
	}
}

// loadConfigFile merges the options file into config. Values are only
// taken for options that changed reports as unset. A missing default
// options file is not an error; a missing explicit one is.
func loadConfigFile(config *Config, changed func(name string) bool) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		if !changed("config") && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set
	if !changed("paths") && len(cfg.Paths) > 0 {
		config.Paths = cfg.Paths
	}
	if !changed("output") && cfg.Output != "" {
		config.Output = cfg.Output
	}
	if !changed("format") && cfg.Format != "" {
		config.Format = cfg.Format
	}
	if !changed("ext") && len(cfg.Extensions) > 0 {
		config.Extensions = cfg.Extensions
	}
	if !changed("exclude") && cfg.ExcludeDirs != nil {
		config.ExcludeDirs = cfg.ExcludeDirs
	}
	if !changed("log-level") && cfg.LogLevel != "" {
		config.LogLevel = cfg.LogLevel
	}
	if !changed("concurrency") && cfg.Concurrency != 0 {
		config.Concurrency = cfg.Concurrency
	}

	return nil
}

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}

func validateConfig(config *Config) error {
	if err := getValidator().Struct(config); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
