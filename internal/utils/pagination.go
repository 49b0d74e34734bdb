package utils

import (
	"strconv"

	"swiftride/internal/models"

	"github.com/gin-gonic/gin"
)

type PaginationParams struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"limit"`
}

type PaginationMeta struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

func GetPaginationParams(c *gin.Context) *PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))

	if page < 1 {
		page = 1
	}
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return &PaginationParams{
		Page:     page,
		PageSize: pageSize,
	}
}

// PaginationMetaFromPage lifts a catalog page's already-clamped counters into
// response metadata.
func PaginationMetaFromPage(page models.VehiclePage) *PaginationMeta {
	return &PaginationMeta{
		Page:        page.Page,
		PageSize:    page.PageSize,
		Total:       page.TotalCount,
		TotalPages:  page.TotalPages,
		HasNext:     page.HasNextPage,
		HasPrevious: page.HasPrevPage,
	}
}
