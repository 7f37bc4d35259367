package entity

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PaginationParams is a 1-based page window over an ordered result set.
type PaginationParams struct {
	Page    int
	PerPage int
}

// Normalize clamps Page to at least 1 and substitutes DefaultPerPage for a
// non-positive PerPage. Any PerPage >= 1 is kept as given.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	return p
}

// Capped normalizes and then limits PerPage to MaxPerPage. Client-facing
// listings use it; the repositories honor whatever window they are given.
func (p PaginationParams) Capped() PaginationParams {
	p = p.Normalize()
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset is the number of records skipped before the window.
func (p PaginationParams) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PerPage
}

// Limit is the maximum number of records in the window.
func (p PaginationParams) Limit() int {
	return p.Normalize().PerPage
}

// TotalPages for the given number of matching records.
func (p PaginationParams) TotalPages(total int64) int {
	perPage := int64(p.Limit())
	pages := total / perPage
	if total%perPage > 0 {
		pages++
	}
	return int(pages)
}
