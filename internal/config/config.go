// Package config resolves ascramp settings from defaults, .env files and the
// environment. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/geal-ai/ascramp"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDataDir  = "ASCRAMP_DATA_DIR"
	EnvColormap = "ASCRAMP_COLORMAP"
	EnvSamples  = "ASCRAMP_SAMPLES"
	EnvOutDir   = "ASCRAMP_OUT_DIR"
	EnvWorkers  = "ASCRAMP_WORKERS"
)

// DefaultEnvFile is read when present in the working directory.
const DefaultEnvFile = ".env"

// Config holds the resolved settings.
type Config struct {
	DataDir  string // directory scanned for .asc files
	Colormap string // built-in ramp name
	Samples  int    // color table size
	OutDir   string // where rendered files go
	Workers  int    // concurrent grid loads
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		DataDir:  "data",
		Colormap: "gist_earth",
		Samples:  ascramp.DefaultSamples,
		OutDir:   ".",
		Workers:  6,
	}
}

// Load returns Default overlaid with the given .env files (DefaultEnvFile
// when none are named; a missing default file is not an error) and then with
// the process environment, which takes precedence.
func Load(envFiles ...string) (Config, error) {
	cfg := Default()

	explicit := len(envFiles) > 0
	if !explicit {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		vals, err := godotenv.Read(f)
		if err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("config: reading %s: %w", f, err)
		}
		if err := cfg.apply(func(k string) (string, bool) { v, ok := vals[k]; return v, ok }); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", f, err)
		}
	}
	if err := cfg.apply(os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := lookup(EnvColormap); ok && v != "" {
		c.Colormap = v
	}
	if v, ok := lookup(EnvOutDir); ok && v != "" {
		c.OutDir = v
	}
	if v, ok := lookup(EnvSamples); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSamples, v, err)
		}
		c.Samples = n
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate rejects settings the commands cannot run with.
func (c Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("config: samples must be positive, got %d", c.Samples)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if _, ok := ascramp.Lookup(c.Colormap); !ok {
		return fmt.Errorf("config: unknown colormap %q", c.Colormap)
	}
	return nil
}
