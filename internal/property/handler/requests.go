package handler

import (
	"strings"

	"holdings/internal/property/models"
	dErrors "holdings/pkg/domain-errors"
)

// CategoryPayload is the wire form of the category tagged union:
// a type discriminant plus a label that is required iff type is "other".
type CategoryPayload struct {
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
}

// UploadPropertyRequest is the body of POST /properties. Image bytes travel
// base64-encoded per encoding/json []byte semantics.
type UploadPropertyRequest struct {
	ID          string          `json:"id"`
	Category    CategoryPayload `json:"category"`
	Image       []byte          `json:"image"`
	Description string          `json:"description"`
	Owner       string          `json:"owner"`
}

// Normalize canonicalizes caller-supplied fields before validation.
func (r *UploadPropertyRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Owner = strings.TrimSpace(r.Owner)
	r.Category.Type = strings.ToLower(strings.TrimSpace(r.Category.Type))
	r.Category.Label = strings.TrimSpace(r.Category.Label)
}

// Validate checks the addressable parts of the request. Image emptiness is
// deliberately left to the service: it owns that contract regardless of
// transport.
func (r *UploadPropertyRequest) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}
	if r.Category.Type == "" {
		return dErrors.New(dErrors.CodeValidation, "category.type is required")
	}
	if _, err := r.ParsedCategory(); err != nil {
		return dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	return nil
}

// ParsedCategory converts the wire payload into the domain category.
func (r *UploadPropertyRequest) ParsedCategory() (models.Category, error) {
	return models.NewCategory(models.CategoryKind(r.Category.Type), r.Category.Label)
}
