// Package config loads ffibench settings from defaults, an optional TOML
// file, FFIBENCH_ environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
	"github.com/hsiuhsiu/ffibench-go/internal/suite"
	"github.com/hsiuhsiu/ffibench-go/pkg/ffibench/logging"
)

// EnvPrefix is prepended to every environment override, with dots in keys
// replaced by underscores: FFIBENCH_LOG_LEVEL sets log.level.
const EnvPrefix = "FFIBENCH"

// MaxFileSize bounds the config file read.
const MaxFileSize = 1 << 20

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Log holds logging settings.
type Log struct {
	Level string `mapstructure:"level" toml:"level"`
}

// Report holds settings for the report command.
type Report struct {
	Output string `mapstructure:"output" toml:"output"`
	Width  int    `mapstructure:"width" toml:"width"`
}

// Config is the resolved configuration.
type Config struct {
	Iterations int      `mapstructure:"iterations" toml:"iterations"`
	Warmup     int      `mapstructure:"warmup" toml:"warmup"`
	Baseline   string   `mapstructure:"baseline" toml:"baseline"`
	Candidate  string   `mapstructure:"candidate" toml:"candidate"`
	Output     string   `mapstructure:"output" toml:"output"`
	Memory     bool     `mapstructure:"memory" toml:"memory"`
	Categories []string `mapstructure:"categories" toml:"categories"`
	Filter     string   `mapstructure:"filter" toml:"filter"`
	Log        Log      `mapstructure:"log" toml:"log"`
	Report     Report   `mapstructure:"report" toml:"report"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Iterations: 1000,
		Warmup:     50,
		Baseline:   bindings.AdapterCompiled,
		Candidate:  bindings.AdapterDynamic,
		Output:     "benchmark_results.json",
		Categories: []string{},
		Log:        Log{Level: "info"},
		Report:     Report{Output: "benchmark_report.md", Width: 100},
	}
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// ConfigFile is a TOML file to merge over the defaults. Empty skips it.
	ConfigFile string
	// Flags and FlagKeys bind command line flags (by flag name) to config
	// keys. Only flags the user set override other sources.
	Flags    *pflag.FlagSet
	FlagKeys map[string]string
}

// Load resolves the configuration and validates it.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := Default()
	v.SetDefault("iterations", defaults.Iterations)
	v.SetDefault("warmup", defaults.Warmup)
	v.SetDefault("baseline", defaults.Baseline)
	v.SetDefault("candidate", defaults.Candidate)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("memory", defaults.Memory)
	v.SetDefault("categories", defaults.Categories)
	v.SetDefault("filter", defaults.Filter)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("report.output", defaults.Report.Output)
	v.SetDefault("report.width", defaults.Report.Width)

	if opts.ConfigFile != "" {
		if err := loadTOMLIntoViper(v, opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range opts.FlagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadTOMLIntoViper(v *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	if info.Size() > MaxFileSize {
		return fmt.Errorf("%w: config file %s is larger than %d bytes", ErrInvalid, path, MaxFileSize)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-selected config file
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// Validate checks ranges and adapter names.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalid, c.Iterations)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must not be negative, got %d", ErrInvalid, c.Warmup)
	}
	adapters := bindings.Adapters()
	if !slices.Contains(adapters, c.Baseline) {
		return fmt.Errorf("%w: unknown baseline adapter %q (want one of %s)", ErrInvalid, c.Baseline, strings.Join(adapters, ", "))
	}
	if !slices.Contains(adapters, c.Candidate) {
		return fmt.Errorf("%w: unknown candidate adapter %q (want one of %s)", ErrInvalid, c.Candidate, strings.Join(adapters, ", "))
	}
	if c.Baseline == c.Candidate {
		return fmt.Errorf("%w: baseline and candidate are both %q", ErrInvalid, c.Baseline)
	}
	for _, cat := range c.Categories {
		if !slices.ContainsFunc(suite.Categories(), func(known string) bool {
			return strings.EqualFold(known, strings.TrimSpace(cat))
		}) {
			return fmt.Errorf("%w: unknown category %q", ErrInvalid, cat)
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Report.Width < 0 {
		return fmt.Errorf("%w: report.width must not be negative, got %d", ErrInvalid, c.Report.Width)
	}
	return nil
}

// SecurePath validates that a file path doesn't escape the working directory
// and returns it made absolute.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
