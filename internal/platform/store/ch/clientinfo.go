package ch

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo describes this process in the driver handshake so server
// side query logs can attribute connections. role examples: "api", "batch"
func BuildClientInfo(role, app string) clickhouse.ClientInfo {
	hostname, _ := os.Hostname()

	var info clickhouse.ClientInfo
	for _, p := range [...][2]string{
		{"vibecheck", app},
		{"role", role},
		{"go", runtime.Version()},
		{"commit", shortRevision()},
		{"host", hostname},
	} {
		info.Products = append(info.Products, struct{ Name, Version string }{
			Name:    p[0],
			Version: strings.TrimSpace(p[1]),
		})
	}
	return info
}

// shortRevision reads the vcs revision stamped into the binary, trimmed to
// the usual short form
func shortRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return "unknown"
}
