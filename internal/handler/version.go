package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"revision,omitempty"`
	BuiltAt   string `json:"built_at,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// ReadBuildInfo combines the configured version with the VCS stamp the Go
// toolchain embeds in the binary
func ReadBuildInfo(version string) BuildInfo {
	info := BuildInfo{Version: version, GoVersion: runtime.Version()}
	if info.Version == "" {
		info.Version = "dev"
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.BuiltAt = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// HandleVersion returns build information about the service
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} BuildInfo
// @Router /version [get]
func HandleVersion(version string) http.HandlerFunc {
	info := ReadBuildInfo(version)
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}
