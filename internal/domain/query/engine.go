package query

import "time"

// DefaultPageSize matches the observed archived-projects page length.
const DefaultPageSize = 20

// Page is one window of a filtered, sorted collection. HasNext and
// HasPrev are derived from the totals, never stored.
type Page struct {
	Items      []ProjectRecord `json:"items"`
	Number     int             `json:"page"`
	Size       int             `json:"page_size"`
	TotalCount int             `json:"total_count"`
	TotalPages int             `json:"total_pages"`
	HasNext    bool            `json:"has_next"`
	HasPrev    bool            `json:"has_prev"`
}

// FilterThenSort filters first, then orders the survivors. It is a pure
// function over its inputs and cheap enough to recompute on every
// keystroke of a text filter.
func FilterThenSort(records []ProjectRecord, state FilterState, spec SortSpec, now time.Time) []ProjectRecord {
	return Sort(Filter(records, state, now), spec)
}

// Paginate slices records into the requested page. Page numbers are
// 1-based; out-of-range requests clamp to the nearest valid page. An
// empty collection yields page 1 of 0 items.
func Paginate(records []ProjectRecord, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      records[start:end],
		Number:     page,
		Size:       pageSize,
		TotalCount: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
