package entity

import "time"

// Aseo is a scheduled cleaning of the shelter.
type Aseo struct {
	ID        int
	Tipo      string
	Fecha     time.Time // calendar date, time of day is zero
	CreatedAt time.Time
}

type CreateAseoParams struct {
	Tipo  string
	Fecha time.Time
}
