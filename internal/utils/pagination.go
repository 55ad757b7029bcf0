package utils

// Pagination defaults for admin listings.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// NormalizePage clamps page/limit to the supported range. Pages are
// 1-indexed.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return page, limit
}

// Skip returns the number of records before the requested window.
func Skip(page, limit int) int {
	return (page - 1) * limit
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// WindowBounds slices [start, end) out of a filtered collection of the
// given length for the client-side strategy.
func WindowBounds(length, page, limit int) (int, int) {
	start := Skip(page, limit)
	if start > length {
		start = length
	}
	end := start + limit
	if end > length {
		end = length
	}
	return start, end
}
