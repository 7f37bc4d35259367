package converter

import (
	"amigos-con-cola/internal/delivery/dto"
	"amigos-con-cola/internal/domain/entity"
)

// AnimalToResponse converts an Animal entity to AnimalResponse DTO
func AnimalToResponse(animal *entity.Animal) *dto.AnimalResponse {
	if animal == nil {
		return nil
	}

	return &dto.AnimalResponse{
		ID:        animal.ID,
		Name:      animal.Name,
		Age:       animal.Age,
		Gender:    animal.Gender,
		ImageURL:  animal.ImageURL,
		Species:   animal.Species,
		Weight:    animal.Weight,
		Story:     animal.Story,
		Code:      animal.Code,
		Location:  animal.Location,
		CreatedAt: animal.CreatedAt,
	}
}

// AnimalsToResponses converts a slice of Animal entities to slice of AnimalResponse DTOs
func AnimalsToResponses(animals []entity.Animal) []dto.AnimalResponse {
	responses := make([]dto.AnimalResponse, len(animals))
	for i := range animals {
		responses[i] = *AnimalToResponse(&animals[i])
	}
	return responses
}

// CreateAnimalRequestToParams converts a CreateAnimalRequest DTO to CreateAnimalParams
func CreateAnimalRequestToParams(req *dto.CreateAnimalRequest) entity.CreateAnimalParams {
	return entity.CreateAnimalParams{
		Name:     req.Name,
		Age:      req.Age,
		Gender:   req.Gender,
		ImageURL: req.ImageURL,
		Species:  req.Species,
		Weight:   req.Weight,
		Story:    req.Story,
		Code:     req.Code,
		Location: req.Location,
	}
}
