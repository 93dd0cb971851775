// Package httpserver constructs the http.Server fronting the receipt
// endpoints. Timeouts come from resolved configuration so deployments can
// tune them without code changes.
package httpserver

import (
	"net/http"

	"github.com/kvverti/serve-ex/internal/platform/config"
)

// New builds the server. The header read timeout bounds how long a slow
// client may hold a connection before finishing its request line and headers.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
