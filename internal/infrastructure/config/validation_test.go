package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
		{name: "negative backups", mutate: func(c *Config) { c.Logging.MaxBackups = -1 }, wantKey: "logging.max_backups"},
		{
			name:    "file log without size",
			mutate:  func(c *Config) { c.Logging.EnableFileLog = true; c.Logging.MaxSizeMB = 0 },
			wantKey: "logging.max_size_mb",
		},
		{name: "unknown provider", mutate: func(c *Config) { c.Provider.Kind = "firefox" }, wantKey: "provider.kind"},
		{name: "relative cdp url", mutate: func(c *Config) { c.Provider.CDPURL = "localhost" }, wantKey: "provider.cdp_url"},
		{name: "ftp cdp url", mutate: func(c *Config) { c.Provider.CDPURL = "ftp://127.0.0.1:9222" }, wantKey: "provider.cdp_url"},
		{name: "zero timeout", mutate: func(c *Config) { c.Provider.EvalTimeout = 0 }, wantKey: "provider.eval_timeout"},
		{
			name:    "memory without fixture",
			mutate:  func(c *Config) { c.Provider.Kind = ProviderMemory; c.Provider.FixturePath = "" },
			wantKey: "provider.fixture_path",
		},
		{name: "listen without port", mutate: func(c *Config) { c.API.Listen = "localhost" }, wantKey: "api.listen"},
		{name: "bad color", mutate: func(c *Config) { c.Groups.DefaultColor = "magenta" }, wantKey: "groups.default_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.API.Listen = ""
	cfg.Provider.EvalTimeout = -time.Second

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "api.listen")
	assert.Contains(t, err.Error(), "provider.eval_timeout")
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " DEBUG "
	cfg.Provider.Kind = "MEMORY"
	cfg.Groups.DefaultColor = "Gray"
	cfg.Groups.DefaultTitle = "  Inbox "

	normalizeConfig(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ProviderMemory, cfg.Provider.Kind)
	assert.Equal(t, entity.ColorGrey, cfg.Groups.DefaultColor)
	assert.Equal(t, "Inbox", cfg.Groups.DefaultTitle)
}

func TestNormalizeConfig_KeepsUnknownColorForValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Groups.DefaultColor = "magenta"

	normalizeConfig(cfg)

	assert.Equal(t, entity.GroupColor("magenta"), cfg.Groups.DefaultColor)
	assert.Error(t, validateConfig(cfg))
}
