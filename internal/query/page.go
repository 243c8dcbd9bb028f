package query

// DefaultPerPage is used when a caller asks for a non-positive page size.
const DefaultPerPage = 20

// PageResult is one page of a list plus the pagination envelope the list
// endpoints return alongside it.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Page slices one page out of items. Page numbers are 1-based and clamped
// into range, so a page beyond the end returns the last page rather than
// an empty list.
func Page[T any](items []T, page, perPage int) PageResult[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return PageResult[T]{
		Items:      items[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
