package apds

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/eapd/pkg/apd"
	"github.com/dmitrymomot/eapd/pkg/logger"
)

// StateFunc returns the state code of the request's user, false when the
// request is not authenticated.
type StateFunc func(r *http.Request) (string, bool)

type Handler struct {
	repo   Repository
	state  StateFunc
	guard  func(http.Handler) http.Handler
	logger *slog.Logger
}

// NewHandler serves repo behind guard, which must authenticate the request
// before state is consulted.
func NewHandler(repo Repository, guard func(http.Handler) http.Handler, state StateFunc, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if guard == nil {
		guard = func(next http.Handler) http.Handler { return next }
	}
	return &Handler{repo: repo, state: state, guard: guard, logger: log}
}

// Routes registers GET /apds.
func (h *Handler) Routes(r chi.Router) {
	r.With(h.guard).Get("/apds", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	state, ok := h.state(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	docs, err := h.repo.ListByState(r.Context(), state)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list apds", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	items := make([]apd.Summary, len(docs))
	for i, doc := range docs {
		items[i] = doc.Summarize()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(items)
}
