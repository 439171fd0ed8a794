package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a MethodNotAllowed handler that answers 404 instead
// of chi's default 405, so a wrong method reveals nothing about which paths
// exist. Requests that do match a route are passed back to the router.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	}
}
