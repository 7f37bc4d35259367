package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrCorruptRecord marks a stored row that cannot be mapped to its domain form.
	ErrCorruptRecord = errors.New("corrupt record")
)

// NotFoundError carries a human-readable description of the missing resource.
// errors.Is(err, ErrNotFound) holds for every NotFoundError.
type NotFoundError struct {
	Description string
}

func (e *NotFoundError) Error() string {
	return e.Description
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NewAnimalNotFound(id int) *NotFoundError {
	return &NotFoundError{Description: fmt.Sprintf("There is no animal with the id %d", id)}
}

func NewAseoNotFound(id int) *NotFoundError {
	return &NotFoundError{Description: fmt.Sprintf("There is no aseo with the id %d", id)}
}
