package converter

import (
	"amigos-con-cola/internal/delivery/dto"
	"amigos-con-cola/internal/domain/entity"
	"amigos-con-cola/pkg/date"
)

// AseoToResponse converts an Aseo entity to AseoResponse DTO
func AseoToResponse(aseo *entity.Aseo) *dto.AseoResponse {
	if aseo == nil {
		return nil
	}

	return &dto.AseoResponse{
		ID:        aseo.ID,
		Tipo:      aseo.Tipo,
		Fecha:     date.FromTime(aseo.Fecha),
		CreatedAt: aseo.CreatedAt,
	}
}

func AseosToResponses(aseos []entity.Aseo) []dto.AseoResponse {
	responses := make([]dto.AseoResponse, len(aseos))
	for i := range aseos {
		responses[i] = *AseoToResponse(&aseos[i])
	}
	return responses
}

func CreateAseoRequestToParams(req *dto.CreateAseoRequest) entity.CreateAseoParams {
	return entity.CreateAseoParams{
		Tipo:  req.Tipo,
		Fecha: req.Fecha.Time,
	}
}
