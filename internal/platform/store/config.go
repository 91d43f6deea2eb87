package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	// AppName identifies the process to both backends, as postgres
	// application_name and in clickhouse client info
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs; zero picks the package defaults
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string // reported in driver client info, e.g. "api", "batch"
}
