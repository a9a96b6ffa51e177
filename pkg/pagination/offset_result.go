package pagination

// OffsetResult represents one page of a skip/limit listing together with
// the page arithmetic derived from the total matching count.
type OffsetResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// NewOffsetResult builds a page result. Page is floor(skip/limit)+1 and
// Pages is ceil(total/limit). limit must already be normalized to >= 1.
func NewOffsetResult[T any](items []T, total int64, skip, limit int) *OffsetResult[T] {
	page := skip/limit + 1
	pages := int((total + int64(limit) - 1) / int64(limit))

	return &OffsetResult[T]{
		Items: items,
		Total: total,
		Page:  page,
		Pages: pages,
	}
}
