package service

import "github.com/meeplehub/api/internal/model"

// normalizePaging clamps page and pageSize to sane values before they
// reach a query.
func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = model.DefaultPage
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = model.DefaultPageSize
	}
	return page, pageSize
}
