package session

import "time"

// Store defaults
const (
	DefaultCacheSize = 1024
	DefaultTTL       = 24 * time.Hour
)

// Log messages
const (
	LogMsgSessionCreated = "Planner session created"
	LogMsgSessionDeleted = "Planner session deleted"
	LogMsgSessionExpired = "Planner session evicted"
)
