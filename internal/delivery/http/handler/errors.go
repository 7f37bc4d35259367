package handler

import (
	"errors"
	"net/http"

	"amigos-con-cola/internal/domain/entity"
	"amigos-con-cola/pkg/response"
)

// writeError maps use case errors to HTTP responses. fallback is the message
// for unexpected failures.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var notFound *entity.NotFoundError
	switch {
	case errors.As(err, &notFound):
		response.NotFound(w, notFound.Description)
	case errors.Is(err, entity.ErrInvalidSpecies), errors.Is(err, entity.ErrInvalidGender),
		errors.Is(err, entity.ErrInvalidWeight):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
