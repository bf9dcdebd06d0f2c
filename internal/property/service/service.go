package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"holdings/internal/property/metrics"
	"holdings/internal/property/models"
	dErrors "holdings/pkg/domain-errors"
	"holdings/pkg/platform/sentinel"
	"holdings/pkg/requestcontext"
)

// Store is the registry the service operates on. Implementations must hand
// out copies on read and allow silent overwrite on Save.
type Store interface {
	Save(ctx context.Context, p models.Property) error
	FindByID(ctx context.Context, id string) (models.Property, error)
	List(ctx context.Context) ([]models.Property, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Hasher derives the content digest stored in place of the image bytes.
type Hasher interface {
	Digest(data []byte) string
}

// Service orchestrates property registration: digesting uploads and mediating
// access to the registry.
type Service struct {
	store   Store
	hasher  Hasher
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(store Store, hasher Hasher, opts ...Option) *Service {
	s := &Service{store: store, hasher: hasher}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload digests the image bytes, builds a record from the supplied fields,
// and stores it under id, silently overwriting any existing record there.
// Returns the digest.
//
// An empty image payload is the one hard validation failure: the call aborts
// with CodeValidation and registry state is untouched.
func (s *Service) Upload(ctx context.Context, id string, category models.Category, image []byte, description, owner string) (string, error) {
	start := time.Now()

	id = strings.TrimSpace(id)
	if len(image) == 0 {
		return "", dErrors.New(dErrors.CodeValidation, "image data is empty")
	}

	digest := s.hasher.Digest(image)

	// Use constructor which validates invariants
	p, err := models.NewProperty(id, category, digest, description, owner, requestcontext.Now(ctx))
	if err != nil {
		// Convert invariant violations to validation errors for API response
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return "", dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
		}
		return "", err
	}

	if err := s.store.Save(ctx, p); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to save property")
	}

	s.log(ctx, "property uploaded",
		"property_id", p.ID,
		"category", p.Category.Display(),
		"image_digest", digest,
	)
	s.metrics.IncrementUploaded()
	s.metrics.ObserveUpload(start)
	s.observeSize(ctx)

	return digest, nil
}

// Get returns a copy of the record at id. Absence surfaces as CodeNotFound;
// it is a normal outcome, not a system failure.
func (s *Service) Get(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementLookup(false)
			return nil, dErrors.New(dErrors.CodeNotFound, "property not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load property")
	}
	s.metrics.IncrementLookup(true)
	return &p, nil
}

// List returns one summary per stored record. The order is the map's native
// iteration order: unordered, and deliberately not guaranteed.
func (s *Service) List(ctx context.Context) ([]models.Summary, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list properties")
	}
	summaries := make([]models.Summary, 0, len(records))
	for _, p := range records {
		summaries = append(summaries, p.Summarize())
	}
	return summaries, nil
}

// Delete removes the record at id if present. The bool reports whether
// anything was removed; deleting an absent key is not an error.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete property")
	}
	if removed {
		s.log(ctx, "property deleted", "property_id", id)
	}
	s.metrics.IncrementDeleted(removed)
	s.observeSize(ctx)
	return removed, nil
}

func (s *Service) log(ctx context.Context, msg string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	s.logger.InfoContext(ctx, msg, attributes...)
}

func (s *Service) observeSize(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	if n, err := s.store.Count(ctx); err == nil {
		s.metrics.SetRegistrySize(n)
	}
}
