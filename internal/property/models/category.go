package models

import (
	"fmt"

	dErrors "holdings/pkg/domain-errors"
)

// CategoryKind is the discriminant of the property category tagged union.
type CategoryKind string

const (
	CategoryRealEstate CategoryKind = "real_estate"
	CategoryCar        CategoryKind = "car"
	CategoryArt        CategoryKind = "art"
	CategoryOther      CategoryKind = "other"
)

// Category classifies a property. The fixed kinds form a closed set; Other
// carries a free-form label for anything unanticipated.
//
// Invariants:
//   - Kind is one of the declared constants
//   - Label is non-empty iff Kind is CategoryOther
type Category struct {
	Kind  CategoryKind `json:"type"`
	Label string       `json:"label,omitempty"`
}

// NewCategory builds a validated category. Label is only meaningful for the
// Other kind and must be empty otherwise.
func NewCategory(kind CategoryKind, label string) (Category, error) {
	c := Category{Kind: kind, Label: label}
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	return c, nil
}

// Validate checks the tag/label invariant.
func (c Category) Validate() error {
	switch c.Kind {
	case CategoryRealEstate, CategoryCar, CategoryArt:
		if c.Label != "" {
			return dErrors.Newf(dErrors.CodeInvariantViolation, "category %s does not take a label", c.Kind)
		}
		return nil
	case CategoryOther:
		if c.Label == "" {
			return dErrors.New(dErrors.CodeInvariantViolation, "category other requires a label")
		}
		return nil
	default:
		return dErrors.Newf(dErrors.CodeInvariantViolation, "unknown category %q", c.Kind)
	}
}

// Display renders the category for human consumption, including the label for
// the Other kind.
func (c Category) Display() string {
	switch c.Kind {
	case CategoryRealEstate:
		return "RealEstate"
	case CategoryCar:
		return "Car"
	case CategoryArt:
		return "Art"
	case CategoryOther:
		return fmt.Sprintf("Other(%s)", c.Label)
	default:
		return string(c.Kind)
	}
}
