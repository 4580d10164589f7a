package model

// Pagination defaults applied by handlers when query parameters are absent.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// TotalPages computes the page count for a 1-based paginated listing.
// Zero items yield zero pages; callers treat that as "nothing to list".
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems-1)/pageSize + 1
}

// PageOffset converts a 1-based page number into a row offset.
func PageOffset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
