package logger

import (
	"log/slog"
	"strings"
	"time"
)

// Levels and formats accepted in Config
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatJSON = "json"
	FormatText = "text"
)

// Attribute keys stamped on records
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyCatalog     = "catalog"
	AttrKeySessionTTL  = "session_ttl"
	AttrKeyRequestID   = "request_id"
)

// Config controls the process logger and the planner attributes attached to
// every record, so lines from different deployments and catalogs can be told apart
type Config struct {
	Level     string
	Format    string
	AddSource bool

	Service     string
	Version     string
	Environment string
	// Catalog is the item catalog file the process plans against
	Catalog string
	// SessionTTL is the idle lifetime of planner sessions; zero for offline tools
	SessionTTL time.Duration
}

// LogLevel parses Level; "warning" is accepted for warn and unknown values mean info
func (c Config) LogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	if name == "warning" {
		name = LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}

// BaseAttributes returns the attributes attached to every record. Empty
// values are left out.
func (c Config) BaseAttributes() []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [][2]string{
		{AttrKeyService, c.Service},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
		{AttrKeyCatalog, c.Catalog},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	if c.SessionTTL > 0 {
		attrs = append(attrs, slog.Duration(AttrKeySessionTTL, c.SessionTTL))
	}
	return attrs
}
