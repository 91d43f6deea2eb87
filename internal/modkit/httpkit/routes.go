package httpkit

import "net/http"

// MountUnder roots everything mount registers under prefix, with mw
// running ahead of those routes
func MountUnder(r Router, prefix string, mount func(Router), mw ...func(http.Handler) http.Handler) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
