package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"holdings/internal/property/metrics"
	"holdings/internal/property/models"
	dErrors "holdings/pkg/domain-errors"
	"holdings/pkg/platform/httputil"
	"holdings/pkg/requestcontext"
)

// Service defines the interface for property registry operations.
type Service interface {
	Upload(ctx context.Context, id string, category models.Category, image []byte, description, owner string) (string, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	List(ctx context.Context) ([]models.Summary, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Handler wires property endpoints to the property service.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a property handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts property endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/properties", h.HandleUpload)
	r.Get("/properties", h.HandleList)
	r.Get("/properties/{id}", h.HandleGet)
	r.Delete("/properties/{id}", h.HandleDelete)
}

// HandleUpload handles POST /properties requests.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[UploadPropertyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	category, err := req.ParsedCategory()
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err)))
		return
	}

	digest, err := h.service.Upload(ctx, req.ID, category, req.Image, req.Description, req.Owner)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeValidation) {
			h.logger.WarnContext(ctx, "upload rejected",
				"request_id", requestID,
				"property_id", req.ID,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "upload failed",
			"request_id", requestID,
			"property_id", req.ID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to upload property"))
		return
	}

	h.logger.InfoContext(ctx, "property uploaded",
		"request_id", requestID,
		"property_id", req.ID,
		"image_digest", digest,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, UploadPropertyResponse{ID: req.ID, ImageDigest: digest})
}

// HandleList handles GET /properties requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ListPropertiesResponse{Properties: summaries})
}

// HandleGet handles GET /properties/{id} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	p, err := h.service.Get(ctx, id)
	if err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "get failed",
				"request_id", requestcontext.RequestID(ctx),
				"property_id", id,
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /properties/{id} requests.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	removed, err := h.service.Delete(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "delete failed",
			"request_id", requestcontext.RequestID(ctx),
			"property_id", id,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, DeletePropertyResponse{Deleted: removed})
}
