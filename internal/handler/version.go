package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version      string `json:"version"`
	GoVersion    string `json:"go_version"`
	BuildTime    string `json:"build_time,omitempty"`
	GitCommit    string `json:"git_commit,omitempty"`
	CatalogItems int    `json:"catalog_items"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"     // Set via -X flag at build time
	BuildTime = "unknown" // Set via -X flag at build time
	GitCommit = "unset"   // Set via -X flag at build time
)

// HandleVersion returns version information about the application
// @Summary Version information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(configVersion string, catalogItems int) http.HandlerFunc {
	version := resolveVersion(configVersion)
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:      version,
			GoVersion:    runtime.Version(),
			BuildTime:    BuildTime,
			GitCommit:    GitCommit,
			CatalogItems: catalogItems,
		})
	}
}

// resolveVersion prefers the build-time version over configuration
func resolveVersion(configVersion string) string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if configVersion != "" {
		return configVersion
	}
	return "dev"
}
