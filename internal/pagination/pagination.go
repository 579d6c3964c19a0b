// Package pagination implements the fixed-size page math shared by every
// feed view: 1-based page numbers, ten posts per page, and clamping of
// out-of-range requests to the last valid page.
package pagination

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

// Page describes one window into an ordered result set.
type Page struct {
	Number      int   `json:"page"`
	Size        int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// Offset returns the row offset of the page within the ordered result set.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Resolve normalizes a requested 1-based page number against a total row
// count. Absent or invalid page numbers resolve to the first page; numbers
// beyond the last page clamp to the last page rather than erroring. An empty
// result set resolves to page 1 of 1.
func Resolve(requested int, totalCount int64) Page {
	totalPages := int((totalCount + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:      number,
		Size:        PageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}
