package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		size       int
		wantOffset int
		wantLimit  int
	}{
		{"first page full", 25, 1, 10, 0, 10},
		{"middle page full", 25, 2, 10, 10, 10},
		{"last page partial", 25, 3, 10, 20, 5},
		{"beyond the end", 25, 4, 10, 30, 0},
		{"far beyond the end", 25, 100, 10, 990, 0},
		{"empty sequence page 1", 0, 1, 10, 0, 0},
		{"empty sequence page 7", 0, 7, 10, 60, 0},
		{"page below one clamps", 25, 0, 10, 0, 10},
		{"exact multiple last page", 20, 2, 10, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Window(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPages(t *testing.T) {
	assert.Equal(t, 1, Pages(0, 10))
	assert.Equal(t, 1, Pages(1, 10))
	assert.Equal(t, 1, Pages(10, 10))
	assert.Equal(t, 2, Pages(11, 10))
	assert.Equal(t, 2, Pages(13, 10))
	assert.Equal(t, 3, Pages(21, 10))
}

// The union of all non-empty pages must reconstruct the sequence exactly
// once each, in order.
func TestPaginateReconstructsSequence(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 13, 37} {
		seq := make([]int, total)
		for i := range seq {
			seq[i] = i
		}

		const size = 10
		var rebuilt []int
		for page := 1; page <= Pages(total, size); page++ {
			rebuilt = append(rebuilt, Paginate(seq, page, size)...)
		}

		assert.Equal(t, seq, append([]int{}, rebuilt...), "total=%d", total)
		assert.Empty(t, Paginate(seq, Pages(total, size)+1, size), "total=%d", total)
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(13, 1, 10)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, int64(13), meta.TotalItems)
	assert.False(t, meta.HasPrev)
	assert.True(t, meta.HasNext)

	meta = NewMeta(13, 2, 10)
	assert.True(t, meta.HasPrev)
	assert.False(t, meta.HasNext)

	meta = NewMeta(0, 1, 10)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)
}
