package models

// StarDisplay splits a 1..5 rating into filled and empty glyph counts for
// rendering. Filled+Empty is always 5.
type StarDisplay struct {
	Filled int `json:"filled"`
	Empty  int `json:"empty"`
}

// Stars clamps the rating into [1,5] and returns the glyph split.
func Stars(rating int) StarDisplay {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return StarDisplay{Filled: rating, Empty: 5 - rating}
}

// Page describes one slice of a paginated listing. HasNext is false exactly
// when page*limit has reached the total, so clients can disable "next" on
// the last page.
type Page struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
}

// NewPage normalizes page/limit (defaults 1 and 5) and computes HasNext.
func NewPage(page, limit, total int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}
	return Page{
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasNext: page*limit < total,
	}
}

// Offset returns the SQL offset for the page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}
