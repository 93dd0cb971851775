package config

import "time"

// Server captures HTTP server level configuration. Values come from flags or
// RECEIPTS_-prefixed environment variables parsed in main, so the rest of the
// code never touches the environment.
type Server struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Defaults used when no flag or environment override is provided.
const (
	DefaultAddr              = ":8080"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
)
