package formatter

import (
	"testing"

	"github.com/ewhitmore/dayweaver/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategoryColor_CoversEveryCategory(t *testing.T) {
	for c := range domain.ValidCategories {
		assert.NotEqual(t, ColorDim, CategoryColor(c), "category %q has no assigned color", c)
	}
	assert.Equal(t, ColorDim, CategoryColor(domain.Category("unknown")))
}

func TestCategoryColor_Stable(t *testing.T) {
	// Color depends only on the category value, never on surrounding state.
	assert.Equal(t, CategoryColor(domain.CategoryWork), CategoryColor(domain.CategoryWork))
	assert.NotEqual(t, CategoryColor(domain.CategoryWork), CategoryColor(domain.CategoryFitness))
}

func TestPriorityBadge(t *testing.T) {
	assert.Contains(t, PriorityBadge(domain.PriorityHigh), "HIGH")
	assert.Contains(t, PriorityBadge(domain.PriorityMedium), "MED")
	assert.Contains(t, PriorityBadge(domain.PriorityLow), "LOW")
	assert.Contains(t, PriorityBadge(domain.Priority("odd")), "ODD")
}

func TestHeader(t *testing.T) {
	h := Header("Your Day")
	assert.Contains(t, h, "YOUR DAY")
}
