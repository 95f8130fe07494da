package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template returns the matched mux path template, e.g.
// /merchants/{mer_id}/stations, so metric labels stay bounded. Requests that
// matched no route fall back to the raw path.
func Template(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if template, err := current.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
