package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "vibecheck/internal/platform/net/http"
	"vibecheck/internal/platform/net/middleware"
)

// CommonStack is the baseline chain every mounted API surface gets,
// outermost first. Auth and run scoping compose on top per module.
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 2 * time.Second}),
		middleware.CORS(middleware.CORSOptions{}),
		// every body-carrying endpoint here takes JSON
		middleware.AllowContentType("application/json"),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// Auth adapts an AuthPort into the shared chain shape, writing
// rejections through the platform JSON envelope
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
