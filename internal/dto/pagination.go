package dto

import (
	"strconv"
)

// PageQuery carries the raw page parameter from the query string. It is bound
// as a string so malformed input degrades to page 1 instead of a binding error.
type PageQuery struct {
	Page string `form:"page"`
}

// PageNumber parses the raw page parameter. Non-numeric or sub-1 values
// default to 1; out-of-range values are clamped later against the total count.
func (q *PageQuery) PageNumber() int {
	page, err := strconv.Atoi(q.Page)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
