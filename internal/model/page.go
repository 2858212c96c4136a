package model

// PageInfo is the navigation metadata attached to a paginated listing.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`

	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// NewPageInfo computes navigation metadata for the requested page.
// Requests below page 1 resolve to page 1 and requests past the last
// page clamp to the last page instead of erroring. An empty result set
// still has exactly one (empty) page.
func NewPageInfo(page, pageSize, totalItems int) PageInfo {
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return PageInfo{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Offset returns the record offset for the resolved page.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PostPage is one page of a feed plus its navigation metadata.
// Group is set for group feeds, Profile for author feeds.
type PostPage struct {
	Posts    []Post   `json:"posts"`
	PageInfo PageInfo `json:"page_info"`

	Group   *Group   `json:"group,omitempty"`
	Profile *Profile `json:"profile,omitempty"`
}
