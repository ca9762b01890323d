package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port"
)

// Handler is the inbound HTTP adapter for operators. It exposes manual
// triggers for the reconciliation jobs and campaign funding. Routes are
// registered on a chi.Router.
type Handler struct {
	reconciler port.Reconciler
	funding    port.FundingUseCase
	logger     *slog.Logger
	validate   *validator.Validate
	router     chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(reconciler port.Reconciler, funding port.FundingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{
		reconciler: reconciler,
		funding:    funding,
		logger:     logger,
		validate:   validator.New(),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/reconcile/stats", h.handleReconcileStats)
		r.Post("/reconcile/quota", h.handleReconcileQuota)
		r.Post("/campaigns/renew", h.handleRenew)
		r.Post("/campaigns/{uniqueID}/funding", h.handleFunding)
		r.Get("/campaigns/{uniqueID}/balance", h.handleBalance)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrReportNotAvailable):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and sends a plain text error. Internal errors are not
// exposed to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := errorStatus(err)
	h.logger.Error(msg,
		slog.Any("error", err),
		slog.Int("status", status),
		slog.String("request_id", middleware.GetReqID(r.Context())))
	if status == http.StatusInternalServerError {
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
