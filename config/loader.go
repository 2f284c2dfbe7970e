package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SHIPX"

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// searchPaths lists where config files are looked up when none is given.
var searchPaths = []string{
	"./shipx.yml",
	"./shipx.yaml",
	"./config/shipx.yml",
	"./config/shipx.yaml",
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// Option is a functional option for Load.
type Option func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) Option {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path. Defaults to ./.env.
func WithEnvFile(path string) Option {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads configuration from file, .env and environment, applies
// defaults, and validates the result.
// Precedence, highest first: environment, .env, config file, defaults.
func Load(opts ...Option) (Config, error) {
	lc := LoaderConfig{FileSystem: RealFileSystem{}, EnvFile: ".env"}
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()
	setDefaults(v)

	if path := resolveConfigFile(lc); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// godotenv never overrides variables already present in the environment.
	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", lc.EnvFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolveConfigFile returns the explicit file if set, else the first
// existing search path, else "".
func resolveConfigFile(lc LoaderConfig) string {
	if lc.ConfigFile != "" {
		return lc.ConfigFile
	}
	for _, p := range searchPaths {
		if lc.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", ProductionURL)
	v.SetDefault("access_token", "")
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.timestamp", true)
	v.SetDefault("logging.caller", false)
}
