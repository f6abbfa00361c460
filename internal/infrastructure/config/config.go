// Package config loads tabgrouper's TOML configuration.
package config

import (
	"time"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

// ProviderKind selects the tab provider implementation.
type ProviderKind string

const (
	ProviderCDP    ProviderKind = "cdp"
	ProviderMemory ProviderKind = "memory"
)

// Config is the root configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging" jsonschema:"description=Log output settings"`
	Provider ProviderConfig `mapstructure:"provider" json:"provider" jsonschema:"description=Tab provider connection"`
	API      APIConfig      `mapstructure:"api" json:"api" jsonschema:"description=HTTP API used by the panel"`
	Database DatabaseConfig `mapstructure:"database" json:"database" jsonschema:"description=Preset storage"`
	Groups   GroupsConfig   `mapstructure:"groups" json:"groups" jsonschema:"description=Defaults for new groups"`
}

// LoggingConfig controls log level, format and the optional log file.
type LoggingConfig struct {
	Level         string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format        string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	EnableFileLog bool   `mapstructure:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" json:"log_dir" jsonschema:"description=Defaults to $XDG_STATE_HOME/tabgrouper/logs"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" json:"compress"`
}

// ProviderConfig selects and configures the tab provider.
type ProviderConfig struct {
	Kind ProviderKind `mapstructure:"kind" json:"kind" jsonschema:"enum=cdp,enum=memory,default=cdp"`
	// CDPURL is the DevTools HTTP endpoint of a browser started with
	// --remote-debugging-port.
	CDPURL      string        `mapstructure:"cdp_url" json:"cdp_url"`
	ExtensionID string        `mapstructure:"extension_id" json:"extension_id" jsonschema:"description=Companion extension id; empty picks the first extension worker"`
	EvalTimeout time.Duration `mapstructure:"eval_timeout" json:"eval_timeout" jsonschema:"type=string,description=Per-call timeout such as 10s"`
	// FixturePath is the state file used by the memory provider.
	FixturePath string `mapstructure:"fixture_path" json:"fixture_path"`
}

// APIConfig configures the HTTP API.
type APIConfig struct {
	Listen string `mapstructure:"listen" json:"listen" jsonschema:"default=127.0.0.1:7733"`
}

// DatabaseConfig configures preset storage.
type DatabaseConfig struct {
	Path string `mapstructure:"path" json:"path" jsonschema:"description=Defaults to $XDG_DATA_HOME/tabgrouper/tabgrouper.sqlite"`
}

// GroupsConfig holds defaults applied when creating groups.
type GroupsConfig struct {
	DefaultColor entity.GroupColor `mapstructure:"default_color" json:"default_color" jsonschema:"enum=grey,enum=blue,enum=red,enum=yellow,enum=green,enum=pink,enum=purple,enum=cyan,enum=orange"`
	DefaultTitle string            `mapstructure:"default_title" json:"default_title"`
}
