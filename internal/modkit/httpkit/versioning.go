package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI roots a versioned surface under /api/{version}. The version
// may carry a leading slash; either spelling lands on the same prefix.
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/"+strings.TrimPrefix(version, "/"), mount, mw...)
}

// MountAPIV1 is MountAPI pinned to v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
