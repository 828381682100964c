package sync

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"shopsync/internal/config"
	"shopsync/internal/highlevel"
	"shopsync/internal/mapping"
)

// Handler is the request/response boundary around the reconciler.
type Handler struct {
	reconciler *Reconciler
	configErr  error
}

// NewHandler wires the catalog client and reconciler from config. A
// missing credential is held as a configuration error and reported per
// request, before any downstream call.
func NewHandler(cfg *config.Config, store mapping.Store) *Handler {
	client, err := highlevel.NewClient(cfg.HighLevel)
	if err != nil {
		return &Handler{configErr: err}
	}
	return &Handler{
		reconciler: NewReconciler(client, store, cfg.HighLevel.LocationID),
	}
}

// NewHandlerWithReconciler is used by tests to inject a fake catalog.
func NewHandlerWithReconciler(r *Reconciler) *Handler {
	return &Handler{reconciler: r}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /sync", h.liveness)
	mux.HandleFunc("POST /sync", h.sync)
}

func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "shopsync",
	})
}

type errorResponse struct {
	Success          bool     `json:"success"`
	Error            string   `json:"error"`
	DownstreamStatus int      `json:"downstreamStatus,omitempty"`
	DownstreamBody   string   `json:"downstreamBody,omitempty"`
	RequestURL       string   `json:"requestUrl,omitempty"`
	Collections      []string `json:"collections,omitempty"`
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.configErr != nil {
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
			Error: "service is not configured: " + h.configErr.Error(),
		})
		return
	}

	var req SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{
			Error: "invalid JSON body: " + err.Error(),
		})
		return
	}

	result, err := h.reconciler.Run(ctx, &req)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	slog.InfoContext(ctx, "sync complete",
		"mode", result.Mode,
		"productId", result.ProductID,
		"collection", result.Collection.Name,
		"warnings", len(result.Warnings),
	)
	writeJSON(ctx, w, http.StatusOK, result)
}

// writeError maps reconciler errors onto HTTP statuses. Every failure
// carries enough structured detail to diagnose the downstream rejection
// without server-side log access.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
		return
	}

	var notFoundErr *CollectionNotFoundError
	if errors.As(err, &notFoundErr) {
		writeJSON(ctx, w, http.StatusNotFound, errorResponse{
			Error:       notFoundErr.Error(),
			Collections: notFoundErr.Observed,
		})
		return
	}

	var statusErr *highlevel.StatusError
	if errors.As(err, &statusErr) {
		status := statusErr.StatusCode
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadGateway
		}
		writeJSON(ctx, w, status, errorResponse{
			Error:            err.Error(),
			DownstreamStatus: statusErr.StatusCode,
			DownstreamBody:   statusErr.Body,
			RequestURL:       statusErr.URL,
		})
		return
	}

	var invariantErr *InvariantError
	if errors.As(err, &invariantErr) {
		writeJSON(ctx, w, http.StatusBadGateway, errorResponse{Error: invariantErr.Error()})
		return
	}

	slog.ErrorContext(ctx, "sync failed", "error", err)
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to write response", "error", err)
	}
}
