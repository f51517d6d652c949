// Package pagination slices ordered feed sequences into fixed-size pages.
package pagination

// Window computes the (offset, limit) of 1-based page number `page` over a
// sequence of `total` elements with `size` elements per page, clipped to the
// sequence bounds. A page past the end yields limit 0, never an error; page
// numbers below 1 are treated as page 1.
func Window(total, page, size int) (offset, limit int) {
	if size <= 0 || total < 0 {
		return 0, 0
	}
	if page < 1 {
		page = 1
	}
	offset = (page - 1) * size
	if offset >= total {
		return offset, 0
	}
	limit = size
	if offset+limit > total {
		limit = total - offset
	}
	return offset, limit
}

// Pages returns the number of pages needed to hold `total` elements,
// i.e. ceil(total/size). An empty sequence still has one (empty) page.
func Pages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Paginate returns the 1-based page `page` of an already materialized
// sequence. Beyond-the-end pages come back empty.
func Paginate[T any](seq []T, page, size int) []T {
	offset, limit := Window(len(seq), page, size)
	if limit == 0 {
		return nil
	}
	return seq[offset : offset+limit]
}

// Meta describes a page's position within the full sequence; it is handed to
// the rendering collaborator alongside the page contents.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// NewMeta builds page metadata for 1-based page `page` over `total` items.
func NewMeta(total int64, page, size int) Meta {
	if page < 1 {
		page = 1
	}
	pages := Pages(int(total), size)
	return Meta{
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
}
