// Package handler is the thin HTTP layer over the receipt service. It
// delegates to domain code without embedding business logic so transport
// concerns remain isolated.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kvverti/serve-ex/internal/platform/metrics"
	"github.com/kvverti/serve-ex/internal/platform/middleware"
	"github.com/kvverti/serve-ex/internal/points"
	"github.com/kvverti/serve-ex/internal/receipt"
	dErrors "github.com/kvverti/serve-ex/pkg/domain-errors"
)

// Service defines the interface for receipt operations.
type Service interface {
	Process(ctx context.Context, rec receipt.Receipt) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (receipt.Receipt, error)
}

// Handler handles the receipt endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
	metrics *metrics.Metrics
}

// New creates a new receipt Handler.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		metrics: metrics,
	}
}

// Register mounts the receipt routes with their middleware chain.
func (h *Handler) Register(r chi.Router) {
	receiptRouter := chi.NewRouter()
	receiptRouter.Use(middleware.Recovery(h.logger))
	receiptRouter.Use(middleware.RequestID)
	receiptRouter.Use(middleware.Logger(h.logger))
	receiptRouter.Use(middleware.ContentTypeJSON)
	receiptRouter.Use(middleware.Latency(h.metrics))
	receiptRouter.Post("/process", h.handleProcess)
	receiptRouter.Get("/{id}/points", h.handlePoints)

	r.Mount("/receipts", receiptRouter)
}

type processResponse struct {
	ID uuid.UUID `json:"id"`
}

type pointsResponse struct {
	Points uint64 `json:"points"`
}

// handleProcess decodes a submitted receipt, gates it through acceptability,
// and responds with the assigned identifier.
func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	rec, err := receipt.Decode(r.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "receipt payload did not decode",
			"request_id", requestID,
			"error", err.Error(),
		)
		h.metrics.IncReceiptsRejected()
		writeError(w, err)
		return
	}

	id, err := h.service.Process(ctx, rec)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			h.logger.WarnContext(ctx, "receipt failed acceptability",
				"request_id", requestID,
				"retailer", rec.Retailer,
			)
			h.metrics.IncReceiptsRejected()
			writeError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to store receipt",
			"request_id", requestID,
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "failed to store receipt"))
		return
	}

	h.metrics.IncReceiptsProcessed()
	writeJSON(w, http.StatusOK, processResponse{ID: id})
}

// handlePoints loads a stored receipt by identifier and responds with its
// computed score.
func (h *Handler) handlePoints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, dErrors.Wrap(dErrors.CodeBadRequest, "receipt id must be a uuid", err))
		return
	}

	rec, err := h.service.Get(ctx, id)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			// Absence is an expected outcome, not worth a warning.
			writeError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to load receipt",
			"request_id", requestID,
			"receipt_id", id,
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "failed to load receipt"))
		return
	}

	h.metrics.IncPointsServed()
	writeJSON(w, http.StatusOK, pointsResponse{Points: points.Calculate(rec)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError centralizes domain error translation to HTTP responses, keeping
// the JSON error envelope consistent across endpoints.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := dErrors.CodeInternal
	var coded *dErrors.Error
	if errors.As(err, &coded) {
		status = dErrors.ToHTTPStatus(coded.Code)
		code = coded.Code
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": string(code),
	})
}
