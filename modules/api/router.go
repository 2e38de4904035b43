package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PathOpenAPI serves the API documentation.
const PathOpenAPI = "/open-api"

// Registrar adds one resource group to the router.
type Registrar func(r chi.Router)

// Register calls each registrar with r, in order, and mounts
// GET /open-api returning doc. A nil doc is served as an empty object.
func Register(r chi.Router, doc any, registrars ...Registrar) {
	for _, register := range registrars {
		if register != nil {
			register(r)
		}
	}

	if doc == nil {
		doc = map[string]any{}
	}
	body, err := json.Marshal(doc)
	r.Get(PathOpenAPI, func(w http.ResponseWriter, _ *http.Request) {
		if err != nil {
			http.Error(w, "openapi document is not valid JSON", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(body)
	})
}
