package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// validateConfig collects every invalid value before failing.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateProvider(config)...)
	validationErrors = append(validationErrors, validateAPI(config)...)
	validationErrors = append(validationErrors, validateGroups(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateProvider(config *Config) []string {
	var validationErrors []string
	switch config.Provider.Kind {
	case ProviderCDP:
		u, err := url.Parse(config.Provider.CDPURL)
		if err != nil || u.Host == "" {
			validationErrors = append(validationErrors,
				fmt.Sprintf("provider.cdp_url must be an absolute URL (got %q)", config.Provider.CDPURL))
		} else if u.Scheme != "http" && u.Scheme != "ws" {
			validationErrors = append(validationErrors, "provider.cdp_url scheme must be http or ws")
		}
		if config.Provider.EvalTimeout <= 0 {
			validationErrors = append(validationErrors, "provider.eval_timeout must be positive")
		}
	case ProviderMemory:
		if config.Provider.FixturePath == "" {
			validationErrors = append(validationErrors, "provider.fixture_path is required for the memory provider")
		}
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("provider.kind must be cdp or memory (got %q)", config.Provider.Kind))
	}
	return validationErrors
}

func validateAPI(config *Config) []string {
	if _, _, err := net.SplitHostPort(config.API.Listen); err != nil {
		return []string{fmt.Sprintf("api.listen must be host:port (got %q)", config.API.Listen)}
	}
	return nil
}

func validateGroups(config *Config) []string {
	if !config.Groups.DefaultColor.Valid() {
		return []string{fmt.Sprintf("groups.default_color %q is not a group color", config.Groups.DefaultColor)}
	}
	return nil
}
