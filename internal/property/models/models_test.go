package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "holdings/pkg/domain-errors"
)

func TestCategoryValidate(t *testing.T) {
	t.Run("fixed kinds reject labels", func(t *testing.T) {
		for _, kind := range []CategoryKind{CategoryRealEstate, CategoryCar, CategoryArt} {
			_, err := NewCategory(kind, "")
			assert.NoError(t, err, "kind %s", kind)

			_, err = NewCategory(kind, "stray")
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation), "kind %s", kind)
		}
	})

	t.Run("other requires a label", func(t *testing.T) {
		c, err := NewCategory(CategoryOther, "boat")
		require.NoError(t, err)
		assert.Equal(t, "boat", c.Label)

		_, err = NewCategory(CategoryOther, "")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := NewCategory("spaceship", "")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestCategoryDisplay(t *testing.T) {
	assert.Equal(t, "RealEstate", Category{Kind: CategoryRealEstate}.Display())
	assert.Equal(t, "Car", Category{Kind: CategoryCar}.Display())
	assert.Equal(t, "Art", Category{Kind: CategoryArt}.Display())
	assert.Equal(t, "Other(vintage boat)", Category{Kind: CategoryOther, Label: "vintage boat"}.Display())
}

func TestNewProperty(t *testing.T) {
	now := time.Now()
	digest := strings.Repeat("ab", 32)

	t.Run("valid record", func(t *testing.T) {
		p, err := NewProperty("p1", Category{Kind: CategoryArt}, digest, "a painting", "alice", now)
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, digest, p.ImageDigest)
		assert.Equal(t, now, p.UploadedAt)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := NewProperty("", Category{Kind: CategoryArt}, digest, "", "", now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("rejects malformed digest", func(t *testing.T) {
		_, err := NewProperty("p1", Category{Kind: CategoryArt}, "abc", "", "", now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestSummarize(t *testing.T) {
	digest := strings.Repeat("cd", 32)
	p := Property{ID: "p2", Category: Category{Kind: CategoryOther, Label: "boat"}, ImageDigest: digest}
	s := p.Summarize()
	assert.Equal(t, Summary{ID: "p2", CategoryDisplay: "Other(boat)", ImageDigest: digest}, s)
}
