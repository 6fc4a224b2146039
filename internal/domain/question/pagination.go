package question

// Page describes one page of a filtered listing. TotalQuestions counts every
// record matching the filter, independent of pagination.
type Page struct {
	CurrentPage    int   `json:"currentPage"`
	TotalPages     int   `json:"totalPages"`
	TotalQuestions int64 `json:"totalQuestions"`
	PageSize       int   `json:"pageSize"`
	HasNextPage    bool  `json:"hasNextPage"`
	HasPrevPage    bool  `json:"hasPrevPage"`
}

// NewPage computes pagination metadata for a page request against total
// matching records. An empty result set has zero total pages and therefore
// never a next page; a previous page exists for any page beyond the first.
func NewPage(page, limit int, total int64) Page {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Page{
		CurrentPage:    page,
		TotalPages:     totalPages,
		TotalQuestions: total,
		PageSize:       limit,
		HasNextPage:    page < totalPages,
		HasPrevPage:    page > 1,
	}
}
