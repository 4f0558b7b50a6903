package helpers

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// NormalizePagination coerces page and page_size into their valid ranges.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// CalculateOffsetLimit converts a 1-based page number into a SQL offset and limit.
func CalculateOffsetLimit(page, pageSize int) (offset uint64, limit uint64) {
	page, pageSize = NormalizePagination(page, pageSize)
	return uint64((page - 1) * pageSize), uint64(pageSize)
}
