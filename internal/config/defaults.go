// Package config provides configuration loading and defaults for stellar.
package config

// DefaultConfigDir is the default location for stellar configuration.
const DefaultConfigDir = "~/.config/stellar"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "stellar.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix prefixes environment overrides, e.g. STELLAR_LANGUAGE.
const EnvPrefix = "STELLAR"

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "ru"

// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// DefaultTeam holds the default team assembly settings.
var DefaultTeam = Team{
	DefaultSize:   3,
	RequiredRoles: []string{"supervisor", "foreman", "worker"},
}

// DefaultWatch holds the default watcher settings.
var DefaultWatch = Watch{
	DebounceMS: 300,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
