package models

import (
	"time"

	dErrors "holdings/pkg/domain-errors"
)

// Property is a registered asset record. The image itself is never stored;
// only its content digest is retained, so two uploads of the same bytes are
// recognizably identical.
//
// Invariants:
//   - ID is non-empty and equals the record's key in the registry
//   - ImageDigest is 64 lowercase hex characters (SHA-256)
//   - Category satisfies its own tag/label invariant
//
// A record is a plain value: the registry hands out copies, never references,
// so callers cannot mutate stored state.
type Property struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	ImageDigest string    `json:"image_digest"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Summary is the enumeration row returned by List: the key, a human-readable
// category rendering, and the content digest.
type Summary struct {
	ID              string `json:"id"`
	CategoryDisplay string `json:"category"`
	ImageDigest     string `json:"image_digest"`
}

// NewProperty constructs a validated record.
func NewProperty(id string, category Category, imageDigest, description, owner string, now time.Time) (Property, error) {
	if id == "" {
		return Property{}, dErrors.New(dErrors.CodeInvariantViolation, "property id cannot be empty")
	}
	if err := category.Validate(); err != nil {
		return Property{}, err
	}
	if len(imageDigest) != 64 {
		return Property{}, dErrors.New(dErrors.CodeInvariantViolation, "image digest must be 64 hex characters")
	}
	return Property{
		ID:          id,
		Category:    category,
		ImageDigest: imageDigest,
		Description: description,
		Owner:       owner,
		UploadedAt:  now,
	}, nil
}

// Summarize projects the record into its enumeration row.
func (p Property) Summarize() Summary {
	return Summary{
		ID:              p.ID,
		CategoryDisplay: p.Category.Display(),
		ImageDigest:     p.ImageDigest,
	}
}
