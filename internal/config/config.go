package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level stellar configuration.
type Config struct {
	Language     string `mapstructure:"language"`
	DataDir      string `mapstructure:"data_dir"`
	RosterFile   string `mapstructure:"roster_file"`
	PatternsFile string `mapstructure:"patterns_file"`
	LogLevel     string `mapstructure:"log_level"`
	Team         Team   `mapstructure:"team"`
	Watch        Watch  `mapstructure:"watch"`
	Output       Output `mapstructure:"output"`
}

// Team defines team assembly defaults.
type Team struct {
	DefaultSize   int      `mapstructure:"default_size"`
	RequiredRoles []string `mapstructure:"required_roles"`
}

// Watch defines watcher settings.
type Watch struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Debounce returns the watcher debounce interval.
func (w Watch) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location),
// applies STELLAR_* environment overrides and returns a Config with all
// defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("language", DefaultLanguage)
	v.SetDefault("data_dir", DefaultConfigDir)
	v.SetDefault("roster_file", "")
	v.SetDefault("patterns_file", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("team.default_size", DefaultTeam.DefaultSize)
	v.SetDefault("team.required_roles", DefaultTeam.RequiredRoles)
	v.SetDefault("watch.debounce_ms", DefaultWatch.DebounceMS)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Missing config file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.RosterFile = expandPath(cfg.RosterFile)
	cfg.PatternsFile = expandPath(cfg.PatternsFile)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBName)
}

// ConfigDir returns the expanded default configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
