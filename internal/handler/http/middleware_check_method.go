package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod replaces chi's MethodNotAllowed handler. A request that
// hits a known path with an unsupported method gets 404 instead of 405, so
// probing methods does not reveal which paths exist.
//
// Register it after all routes:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !methodRegisteredFor(router, r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// methodRegisteredFor reports whether the exact path is routed and handles
// the method. Patterns with parameter or wildcard segments are not expanded.
func methodRegisteredFor(router *chi.Mux, path, method string) bool {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
