package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog             = "configs/catalog/items.json"
	ConfigPathCatalogSchema       = "configs/schemas/catalog.schema.json"
	ConfigPathBuildingCorrections = "configs/buildings/corrections.yaml"
)

// Environment variable names
const (
	EnvPort                    = "PORT"
	EnvLogLevel                = "LOG_LEVEL"
	EnvLogFormat               = "LOG_FORMAT"
	EnvEnvironment             = "ENVIRONMENT"
	EnvServiceName             = "SERVICE_NAME"
	EnvVersion                 = "VERSION"
	EnvCatalogPath             = "CATALOG_PATH"
	EnvCatalogSchemaPath       = "CATALOG_SCHEMA_PATH"
	EnvCatalogStrict           = "CATALOG_STRICT"
	EnvBuildingCorrectionsPath = "BUILDING_CORRECTIONS_PATH"
	EnvSessionCacheSize        = "SESSION_CACHE_SIZE"
	EnvSessionTTL              = "SESSION_TTL"
	EnvShutdownTimeout         = "SHUTDOWN_TIMEOUT"
	EnvAPIKey                  = "API_KEY"
	EnvTrustedProxies          = "TRUSTED_PROXIES"
	EnvSchemaVersion           = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "craftplanner"
	DefaultVersion          = "dev"
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 24 * time.Hour
	DefaultShutdownTimeout  = 10 * time.Second
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
