package config

import (
	"time"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

const (
	DefaultAPIListen   = "127.0.0.1:7733"
	DefaultCDPURL      = "http://127.0.0.1:9222"
	DefaultEvalTimeout = 10 * time.Second
)

// DefaultConfig returns the built-in configuration.
// Paths that depend on XDG directories are filled in by the Manager.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Provider: ProviderConfig{
			Kind:        ProviderCDP,
			CDPURL:      DefaultCDPURL,
			EvalTimeout: DefaultEvalTimeout,
		},
		API: APIConfig{
			Listen: DefaultAPIListen,
		},
		Groups: GroupsConfig{
			DefaultColor: entity.DefaultGroupColor,
		},
	}
}
