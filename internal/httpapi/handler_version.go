package httpapi

import (
	"encoding/json"
	"net/http"
	"runtime"
)

const serviceName = "kpi-hook-service"

type versionResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// VersionHandler reports the build version stamped into the binary with
// -ldflags "-X main.version=...".
func VersionHandler(version string) http.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	body, _ := json.Marshal(versionResponse{Name: serviceName, Version: version, GoVersion: runtime.Version()})

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
