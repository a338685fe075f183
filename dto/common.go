package dto

import (
	"hotel-booking/constants"
	"hotel-booking/response"
)

// PaginatedResponse is a page of T with its pagination block.
type PaginatedResponse[T any] struct {
	Data       T                    `json:"data"`
	Pagination *response.Pagination `json:"pagination"`
}

// PageQuery is the page / per_page pair accepted by list endpoints.
type PageQuery struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"perPage"`
}

// Normalize applies the defaults and the per page ceiling.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = constants.DefaultPerPage
	}
	if q.PerPage > constants.MaxPerPage {
		q.PerPage = constants.MaxPerPage
	}
	return q
}
