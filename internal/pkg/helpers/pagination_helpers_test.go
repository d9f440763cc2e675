package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		size           int
		expectedOffset uint64
		expectedLimit  int
	}{
		{name: "first page", page: 1, size: 10, expectedOffset: 0, expectedLimit: 10},
		{name: "third page", page: 3, size: 20, expectedOffset: 40, expectedLimit: 20},
		{name: "zero page falls back to first", page: 0, size: 10, expectedOffset: 0, expectedLimit: 10},
		{name: "negative page falls back to first", page: -5, size: 10, expectedOffset: 0, expectedLimit: 10},
		{name: "zero size falls back to default", page: 2, size: 0, expectedOffset: 10, expectedLimit: 10},
		{name: "oversized page size is capped", page: 1, size: 500, expectedOffset: 0, expectedLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		info := NewPaginationInfo(42, 1, 10)

		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 5, info.TotalPages)
		assert.Equal(t, 10, info.PageSize)
		assert.Equal(t, int64(42), info.TotalItems)
	})

	t.Run("empty result set still reports one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)

		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("page beyond the end is clamped", func(t *testing.T) {
		info := NewPaginationInfo(15, 9, 10)

		assert.Equal(t, 2, info.TotalPages)
		assert.Equal(t, 2, info.CurrentPage)
	})
}
