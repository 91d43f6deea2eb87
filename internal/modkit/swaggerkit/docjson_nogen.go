//go:build !swag

package swaggerkit

import "net/http"

// skeletonDoc keeps the UI loadable when the binary was built without the
// generated document
const skeletonDoc = `{"openapi":"3.0.3","info":{"title":"API","version":"0.0.0"},"paths":{}}`

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(skeletonDoc))
	}
}
