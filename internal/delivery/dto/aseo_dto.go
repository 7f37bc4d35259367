package dto

import (
	"time"

	"amigos-con-cola/pkg/date"
)

// Request DTOs

// CreateAseoRequest schedules a cleaning of the shelter.
type CreateAseoRequest struct {
	Tipo  string    `json:"tipo" validate:"required,max=50"`
	Fecha date.Date `json:"fecha" validate:"required"`
}

// Response DTOs

type AseoResponse struct {
	ID        int       `json:"id"`
	Tipo      string    `json:"tipo"`
	Fecha     date.Date `json:"fecha"`
	CreatedAt time.Time `json:"created_at"`
}

type AseoListResponse struct {
	Aseos      []AseoResponse
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}
