package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ErrInvalidEnv is returned when the environment cannot produce a usable config
var ErrInvalidEnv = errors.New("invalid environment")

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// ValidateEnv checks the schema version and that set values parse
func ValidateEnv() error {
	if schemaVersion, ok := os.LookupEnv(EnvSchemaVersion); ok && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%w: ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated",
			ErrInvalidEnv, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var problems []string

	if v, ok := os.LookupEnv(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			problems = append(problems, fmt.Sprintf("%s must be a port number, got %q", EnvPort, v))
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && !slices.Contains(validLogLevels, strings.ToLower(v)) {
		problems = append(problems, fmt.Sprintf("%s must be one of %s, got %q", EnvLogLevel, strings.Join(validLogLevels, ", "), v))
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && !slices.Contains(validLogFormats, strings.ToLower(v)) {
		problems = append(problems, fmt.Sprintf("%s must be one of %s, got %q", EnvLogFormat, strings.Join(validLogFormats, ", "), v))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidEnv, strings.Join(problems, "; "))
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like values that fall back to defaults)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvSchemaVersion) == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set (expected: %s)", ExpectedEnvSchemaVersion))
	}

	if os.Getenv(EnvAPIKey) == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if v, ok := os.LookupEnv(EnvSessionCacheSize); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil || n <= 0 {
			warnings = append(warnings, fmt.Sprintf("SESSION_CACHE_SIZE %q is not a positive integer, using %d", v, DefaultSessionCacheSize))
		}
	}

	if v, ok := os.LookupEnv(EnvSessionTTL); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err != nil || d <= 0 {
			warnings = append(warnings, fmt.Sprintf("SESSION_TTL %q is not a positive duration, using %s", v, DefaultSessionTTL))
		}
	}

	if v, ok := os.LookupEnv(EnvCatalogStrict); ok {
		if _, err := strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			warnings = append(warnings, fmt.Sprintf("CATALOG_STRICT %q is not a boolean, using false", v))
		}
	}

	return warnings, nil
}
