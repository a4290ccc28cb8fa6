package dto

import (
	"math"

	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/errs"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Filter struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Normalize fills defaults for zero values and clamps the page size.
// Negative values are rejected rather than silently corrected.
func (f *Filter) Normalize() error {
	if f.Page < 0 {
		return errs.NewValidationError("page", "min")
	}
	if f.PageSize < 0 {
		return errs.NewValidationError("pageSize", "min")
	}

	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}

	return nil
}

// Skip saturates at math.MaxInt64 so a huge page never wraps negative.
func (f Filter) Skip() int64 {
	if f.Page <= 1 || f.PageSize <= 0 {
		return 0
	}

	pages, size := int64(f.Page-1), int64(f.PageSize)
	if pages > math.MaxInt64/size {
		return math.MaxInt64
	}

	return pages * size
}

func (f Filter) Limit() int64 {
	return int64(f.PageSize)
}

type PaginationResponse struct {
	Data     interface{} `json:"data"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Total    int64       `json:"total"`
}
