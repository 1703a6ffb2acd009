// Package config loads rampkit settings from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no explicit config path is given.
const DefaultPath = "rampkit.yaml"

// Config holds the runtime settings for adapters and the CLI.
type Config struct {
	// Workdir is the absolute root for FileManager paths. Defaults to the
	// current directory.
	Workdir string `yaml:"workdir"`
	// StorageName names the ramp in storage reference strings.
	StorageName string `yaml:"storage_name"`
	// Model and MaxTokens configure the completion client.
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	// MemoryFile is the path of the file-backed artifact store.
	MemoryFile string `yaml:"memory_file"`
}

// Default returns the built-in settings. Workdir resolves to the current
// directory.
func Default() (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("getwd: %w", err)
	}
	return Config{
		Workdir:     cwd,
		StorageName: "TextStorage",
		MaxTokens:   1024,
		MemoryFile:  ".rampkit/memory.json",
	}, nil
}

// Load builds a Config from defaults, then the YAML file at path (or
// DefaultPath when path is empty and the file exists), then RAMP_* env
// overrides. A missing explicit path is an error; a missing DefaultPath is
// not.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// no config file; defaults apply
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RAMP_WORKDIR"); v != "" {
		cfg.Workdir = v
	}
	if v := os.Getenv("RAMP_STORAGE_NAME"); v != "" {
		cfg.StorageName = v
	}
	if v := os.Getenv("RAMP_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("RAMP_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("RAMP_MEMORY_FILE"); v != "" {
		cfg.MemoryFile = v
	}
}
