package dto

import (
	"time"

	"amigos-con-cola/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAnimalRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Age      int             `json:"age" validate:"gte=0,lte=50"`
	Gender   entity.Gender   `json:"gender" validate:"required"`
	ImageURL string          `json:"image_url" validate:"omitempty,url"`
	Species  entity.Species  `json:"species" validate:"required"`
	Weight   decimal.Decimal `json:"weight" validate:"gt=0,lte=9999.99,max_decimals=2"`
	Story    string          `json:"story"`
	Code     string          `json:"code" validate:"required,max=50"`
	Location string          `json:"location" validate:"max=100"`
}

// ListAnimalsQuery holds the query string of GET /animals.
type ListAnimalsQuery struct {
	Page    int
	PerPage int
	Species *entity.Species
	Name    string
}

// Response DTOs

type AnimalResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Age       int             `json:"age"`
	Gender    entity.Gender   `json:"gender"`
	ImageURL  string          `json:"image_url"`
	Species   entity.Species  `json:"species"`
	Weight    decimal.Decimal `json:"weight"`
	Story     string          `json:"story"`
	Code      string          `json:"code"`
	Location  string          `json:"location"`
	CreatedAt time.Time       `json:"created_at"`
}

type AnimalListResponse struct {
	Animals    []AnimalResponse
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}
