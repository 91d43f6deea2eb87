// Package swaggerkit mounts the Swagger UI and the JSON document it reads.
// Builds without the swag tag serve a skeleton document instead of the
// generated one.
package swaggerkit

import (
	"net/http"

	phttp "vibecheck/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const docsRoot = "/api/docs"

// Mount wires the UI and its JSON document under /api/docs. A disabled
// mount registers nothing, so the routes 404.
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(docsRoot, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, docsRoot+"/", http.StatusPermanentRedirect)
	})
	r.Get(docsRoot+"/doc.json", serveDocJSON())
	r.Handle(docsRoot+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(docsRoot+"/doc.json"),
	))
}
