package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// WeightScale is the number of decimal places a weight may carry.
const WeightScale = 2

var (
	// MaxWeight is the largest weight the store can hold exactly.
	MaxWeight = decimal.RequireFromString("9999.99")

	ErrInvalidWeight = errors.New("invalid weight")
)

// ValidWeight reports whether w is positive, at most MaxWeight and has no
// more than WeightScale decimal places.
func ValidWeight(w decimal.Decimal) bool {
	return w.IsPositive() && w.LessThanOrEqual(MaxWeight) && w.Equal(w.Round(WeightScale))
}

// Animal is a sheltered animal as seen by the rest of the application.
// Animals are immutable once created.
type Animal struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Age       int             `json:"age"`
	Gender    Gender          `json:"gender"`
	ImageURL  string          `json:"image_url"`
	Species   Species         `json:"species"`
	Weight    decimal.Decimal `json:"weight"`
	Story     string          `json:"story"`
	Code      string          `json:"code"`
	Location  string          `json:"location"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateAnimalParams carries every Animal field except the identity.
type CreateAnimalParams struct {
	Name     string
	Age      int
	Gender   Gender
	ImageURL string
	Species  Species
	Weight   decimal.Decimal
	Story    string
	Code     string
	Location string
}

// GetAllAnimalsFilters is a domain-level filter for listing animals.
// A nil Species or empty Name means the filter is not applied.
type GetAllAnimalsFilters struct {
	Species *Species
	Name    string // case-insensitive substring
}
