package dto

type Filter struct {
	Limit  int    `query:"limit"`
	Page   int    `query:"page"`
	SortBy string `query:"sortBy"`
}

// Skip returns the number of records before the requested page. Pages are
// 1-based; anything below 1 is treated as the first page.
func (f Filter) Skip() int64 {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	return int64(f.Page-1) * int64(f.Limit)
}
