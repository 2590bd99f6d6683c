package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarsAlwaysSumToFive(t *testing.T) {
	for rating := -3; rating <= 9; rating++ {
		d := Stars(rating)
		assert.Equal(t, 5, d.Filled+d.Empty, "rating %d", rating)
		assert.GreaterOrEqual(t, d.Filled, 1, "rating %d", rating)
		assert.LessOrEqual(t, d.Filled, 5, "rating %d", rating)
	}
}

func TestStarsExactValues(t *testing.T) {
	assert.Equal(t, StarDisplay{Filled: 3, Empty: 2}, Stars(3))
	assert.Equal(t, StarDisplay{Filled: 5, Empty: 0}, Stars(5))
	assert.Equal(t, StarDisplay{Filled: 1, Empty: 4}, Stars(1))
	// Out-of-range ratings clamp instead of rendering nonsense.
	assert.Equal(t, StarDisplay{Filled: 5, Empty: 0}, Stars(12))
	assert.Equal(t, StarDisplay{Filled: 1, Empty: 4}, Stars(0))
}

func TestNewPageDefaults(t *testing.T) {
	p := NewPage(0, 0, 7)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 5, p.Limit)
	assert.Equal(t, 7, p.Total)
	assert.True(t, p.HasNext)
}

func TestNewPageBoundaries(t *testing.T) {
	// 12 items at 5 per page: pages 1 and 2 have more, page 3 is last.
	assert.True(t, NewPage(1, 5, 12).HasNext)
	assert.True(t, NewPage(2, 5, 12).HasNext)
	assert.False(t, NewPage(3, 5, 12).HasNext)

	// An exact multiple of the page size has no phantom next page.
	assert.False(t, NewPage(2, 5, 10).HasNext)

	assert.False(t, NewPage(1, 5, 0).HasNext)
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, NewPage(1, 5, 99).Offset())
	assert.Equal(t, 10, NewPage(3, 5, 99).Offset())
}
