// Package version reports build information of the armkit binary and the
// ARM API versions its models follow.
package version

import (
	"fmt"
	"runtime"

	"github.com/rzbill/armkit/pkg/healthbot"
	"github.com/rzbill/armkit/pkg/securityinsights"
)

// Set at build time via -ldflags "-X".
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

// Info returns a one-line summary, e.g.
// "Armkit 1.2.0 (abcdef01) - 2024-05-01 linux/amd64".
func Info() string {
	return fmt.Sprintf("Armkit %s (%s) - %s %s/%s",
		Version,
		shortCommit(),
		BuildTime,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

func shortCommit() string {
	if len(Commit) > 8 {
		return Commit[:8]
	}
	return Commit
}

// APIVersions maps each provider namespace to the api-version of its models.
func APIVersions() map[string]string {
	return map[string]string{
		healthbot.ProviderNamespace:        healthbot.APIVersion,
		securityinsights.ProviderNamespace: securityinsights.APIVersion,
	}
}

// Map returns build information as a flat map, with one
// "api/<namespace>" key per provider.
func Map() map[string]string {
	m := map[string]string{
		"version":   Version,
		"commit":    Commit,
		"buildTime": BuildTime,
		"goVersion": runtime.Version(),
		"os":        runtime.GOOS,
		"arch":      runtime.GOARCH,
	}
	for ns, v := range APIVersions() {
		m["api/"+ns] = v
	}
	return m
}
