// Package feed slices ordered post sequences into fixed-size pages.
package feed

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// DefaultPageSize matches the reference feed behavior.
const DefaultPageSize = 10

// Page is one slice of an ordered sequence plus navigation state.
type Page[T any] struct {
	Items      []T  `json:"items"`
	PageNumber int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPage builds a Page from items already limited to one page by the
// repository, plus the total row count. A page number past the last page
// yields an empty page with HasNext=false; it is never an error.
func NewPage[T any](items []T, total, pageNumber, pageSize int) Page[T] {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1,
	}
}

// Paginate slices an in-memory ordered sequence. Used by tests and by
// callers that already hold the full sequence.
func Paginate[T any](items []T, pageNumber, pageSize int) Page[T] {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize

	var window []T
	switch {
	case start >= len(items):
		window = []T{}
	case end > len(items):
		window = items[start:]
	default:
		window = items[start:end]
	}

	return NewPage(window, len(items), pageNumber, pageSize)
}

// Offset converts a page number to the repository offset.
func Offset(pageNumber, pageSize int) int {
	if pageNumber < 1 {
		pageNumber = 1
	}
	return (pageNumber - 1) * pageSize
}

// PageParam reads the ?page= query parameter, defaulting to 1.
// Malformed or non-positive values fall back to 1.
func PageParam(c *gin.Context) int {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
