package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eapd/modules/api"
)

func TestRegister_CallsEveryRegistrarWithRouter(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	var got []chi.Router
	record := func(router chi.Router) { got = append(got, router) }

	api.Register(r, nil, record, nil, record, record)

	require.Len(t, got, 3)
	for _, router := range got {
		assert.Same(t, r, router)
	}
}

func TestRegister_OpenAPIServedVerbatim(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"hello": "world", "nested": map[string]any{"n": float64(1)}}
	r := chi.NewRouter()
	api.Register(r, doc, func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, api.PathOpenAPI, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, doc, body)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRegister_NilDocIsEmptyObject(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	api.Register(r, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, api.PathOpenAPI, nil))
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestLoadOpenAPI(t *testing.T) {
	t.Parallel()

	t.Run("default document", func(t *testing.T) {
		doc, err := api.LoadOpenAPI(api.DefaultOpenAPI)
		require.NoError(t, err)
		assert.Equal(t, "3.0.3", doc["openapi"])

		paths, ok := doc["paths"].(map[string]any)
		require.True(t, ok)
		for _, p := range []string{"/auth/login/nonce", "/auth/login", "/auth/logout", "/auth/check", "/me", "/apds", api.PathOpenAPI} {
			assert.Contains(t, paths, p)
		}

		_, err = json.Marshal(doc)
		assert.NoError(t, err, "integer status keys must be JSON-encodable")
	})

	t.Run("numeric keys become strings", func(t *testing.T) {
		doc, err := api.LoadOpenAPI([]byte("responses:\n  200:\n    description: ok\n"))
		require.NoError(t, err)
		responses := doc["responses"].(map[string]any)
		assert.Contains(t, responses, "200")
	})

	t.Run("json input", func(t *testing.T) {
		doc, err := api.LoadOpenAPI([]byte(`{"openapi":"3.1.0"}`))
		require.NoError(t, err)
		assert.Equal(t, "3.1.0", doc["openapi"])
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := api.LoadOpenAPI([]byte("- a\n- b\n"))
		assert.ErrorIs(t, err, api.ErrInvalidOpenAPI)

		_, err = api.LoadOpenAPI([]byte("a: [b"))
		assert.ErrorIs(t, err, api.ErrInvalidOpenAPI)
	})
}
