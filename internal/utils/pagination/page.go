package pagination

import "math"

// MaxPageSize caps the page size a caller can request.
const MaxPageSize = 100

// Params is a page-based pagination request. Page starts at 1.
type Params struct {
	Page     int
	PageSize int
}

// Normalize fills in defaults and clamps out-of-range values.
func (p Params) Normalize(defaultPageSize int) Params {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset is the number of rows to skip. Call on normalized params.
// Pages too far out to address saturate at math.MaxInt and read as empty.
func (p Params) Offset() int {
	if p.PageSize > 0 && p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages is ceil(total / pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
