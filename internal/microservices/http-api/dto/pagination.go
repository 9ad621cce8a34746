package dto

// Pagination is attached to every paged list response
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PageQuery is bound from ?page=&limit= and normalized by Normalize
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > MaxPageSize {
		q.Limit = DefaultPageSize
	}
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
